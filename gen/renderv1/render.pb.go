// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: render/v1/render.proto

package renderv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type GetQuoteRenderStateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	QuoteId       string                 `protobuf:"bytes,1,opt,name=quote_id,json=quoteId,proto3" json:"quote_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQuoteRenderStateRequest) Reset() {
	*x = GetQuoteRenderStateRequest{}
	mi := &file_render_v1_render_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQuoteRenderStateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQuoteRenderStateRequest) ProtoMessage() {}

func (x *GetQuoteRenderStateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_render_v1_render_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQuoteRenderStateRequest.ProtoReflect.Descriptor instead.
func (*GetQuoteRenderStateRequest) Descriptor() ([]byte, []int) {
	return file_render_v1_render_proto_rawDescGZIP(), []int{0}
}

func (x *GetQuoteRenderStateRequest) GetQuoteId() string {
	if x != nil {
		return x.QuoteId
	}
	return ""
}

type GetQuoteRenderStateResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	QuoteId        string                 `protobuf:"bytes,1,opt,name=quote_id,json=quoteId,proto3" json:"quote_id,omitempty"`
	RenderStatus   string                 `protobuf:"bytes,2,opt,name=render_status,json=renderStatus,proto3" json:"render_status,omitempty"`
	RenderImageUrl string                 `protobuf:"bytes,3,opt,name=render_image_url,json=renderImageUrl,proto3" json:"render_image_url,omitempty"`
	RenderError    string                 `protobuf:"bytes,4,opt,name=render_error,json=renderError,proto3" json:"render_error,omitempty"`
	RenderedAt     string                 `protobuf:"bytes,5,opt,name=rendered_at,json=renderedAt,proto3" json:"rendered_at,omitempty"` // RFC 3339, empty when never rendered
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetQuoteRenderStateResponse) Reset() {
	*x = GetQuoteRenderStateResponse{}
	mi := &file_render_v1_render_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQuoteRenderStateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQuoteRenderStateResponse) ProtoMessage() {}

func (x *GetQuoteRenderStateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_render_v1_render_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQuoteRenderStateResponse.ProtoReflect.Descriptor instead.
func (*GetQuoteRenderStateResponse) Descriptor() ([]byte, []int) {
	return file_render_v1_render_proto_rawDescGZIP(), []int{1}
}

func (x *GetQuoteRenderStateResponse) GetQuoteId() string {
	if x != nil {
		return x.QuoteId
	}
	return ""
}

func (x *GetQuoteRenderStateResponse) GetRenderStatus() string {
	if x != nil {
		return x.RenderStatus
	}
	return ""
}

func (x *GetQuoteRenderStateResponse) GetRenderImageUrl() string {
	if x != nil {
		return x.RenderImageUrl
	}
	return ""
}

func (x *GetQuoteRenderStateResponse) GetRenderError() string {
	if x != nil {
		return x.RenderError
	}
	return ""
}

func (x *GetQuoteRenderStateResponse) GetRenderedAt() string {
	if x != nil {
		return x.RenderedAt
	}
	return ""
}

type ListRenderJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TenantId      string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"` // optional
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`                     // optional: queued|running|done|failed
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`                      // optional, server-capped
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRenderJobsRequest) Reset() {
	*x = ListRenderJobsRequest{}
	mi := &file_render_v1_render_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRenderJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRenderJobsRequest) ProtoMessage() {}

func (x *ListRenderJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_render_v1_render_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRenderJobsRequest.ProtoReflect.Descriptor instead.
func (*ListRenderJobsRequest) Descriptor() ([]byte, []int) {
	return file_render_v1_render_proto_rawDescGZIP(), []int{2}
}

func (x *ListRenderJobsRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *ListRenderJobsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListRenderJobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type RenderJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TenantId      string                 `protobuf:"bytes,2,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	QuoteId       string                 `protobuf:"bytes,3,opt,name=quote_id,json=quoteId,proto3" json:"quote_id,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	StartedAt     string                 `protobuf:"bytes,6,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,7,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,8,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RenderJob) Reset() {
	*x = RenderJob{}
	mi := &file_render_v1_render_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RenderJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RenderJob) ProtoMessage() {}

func (x *RenderJob) ProtoReflect() protoreflect.Message {
	mi := &file_render_v1_render_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RenderJob.ProtoReflect.Descriptor instead.
func (*RenderJob) Descriptor() ([]byte, []int) {
	return file_render_v1_render_proto_rawDescGZIP(), []int{3}
}

func (x *RenderJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *RenderJob) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *RenderJob) GetQuoteId() string {
	if x != nil {
		return x.QuoteId
	}
	return ""
}

func (x *RenderJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *RenderJob) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *RenderJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *RenderJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

func (x *RenderJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type ListRenderJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*RenderJob           `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRenderJobsResponse) Reset() {
	*x = ListRenderJobsResponse{}
	mi := &file_render_v1_render_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRenderJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRenderJobsResponse) ProtoMessage() {}

func (x *ListRenderJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_render_v1_render_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRenderJobsResponse.ProtoReflect.Descriptor instead.
func (*ListRenderJobsResponse) Descriptor() ([]byte, []int) {
	return file_render_v1_render_proto_rawDescGZIP(), []int{4}
}

func (x *ListRenderJobsResponse) GetJobs() []*RenderJob {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type ExportUsageReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TenantId      string                 `protobuf:"bytes,1,opt,name=tenant_id,json=tenantId,proto3" json:"tenant_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportUsageReportRequest) Reset() {
	*x = ExportUsageReportRequest{}
	mi := &file_render_v1_render_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportUsageReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportUsageReportRequest) ProtoMessage() {}

func (x *ExportUsageReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_render_v1_render_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportUsageReportRequest.ProtoReflect.Descriptor instead.
func (*ExportUsageReportRequest) Descriptor() ([]byte, []int) {
	return file_render_v1_render_proto_rawDescGZIP(), []int{5}
}

func (x *ExportUsageReportRequest) GetTenantId() string {
	if x != nil {
		return x.TenantId
	}
	return ""
}

func (x *ExportUsageReportRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportUsageReportRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportUsageReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportUsageReportResponse) Reset() {
	*x = ExportUsageReportResponse{}
	mi := &file_render_v1_render_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportUsageReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportUsageReportResponse) ProtoMessage() {}

func (x *ExportUsageReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_render_v1_render_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportUsageReportResponse.ProtoReflect.Descriptor instead.
func (*ExportUsageReportResponse) Descriptor() ([]byte, []int) {
	return file_render_v1_render_proto_rawDescGZIP(), []int{6}
}

func (x *ExportUsageReportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportUsageReportResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_render_v1_render_proto protoreflect.FileDescriptor

const file_render_v1_render_proto_rawDesc = "" +
	"\n" +
	"\x16render/v1/render.proto\x12\trender.v1\"7\n" +
	"\x1aGetQuoteRenderStateRequest\x12\x19\n" +
	"\bquote_id\x18\x01 \x01(\tR\aquoteId\"\xcb\x01\n" +
	"\x1bGetQuoteRenderStateResponse\x12\x19\n" +
	"\bquote_id\x18\x01 \x01(\tR\aquoteId\x12#\n" +
	"\rrender_status\x18\x02 \x01(\tR\frenderStatus\x12(\n" +
	"\x10render_image_url\x18\x03 \x01(\tR\x0erenderImageUrl\x12!\n" +
	"\frender_error\x18\x04 \x01(\tR\vrenderError\x12\x1f\n" +
	"\vrendered_at\x18\x05 \x01(\tR\n" +
	"renderedAt\"b\n" +
	"\x15ListRenderJobsRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\"\xef\x01\n" +
	"\tRenderJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\ttenant_id\x18\x02 \x01(\tR\btenantId\x12\x19\n" +
	"\bquote_id\x18\x03 \x01(\tR\aquoteId\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"started_at\x18\x06 \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\a \x01(\tR\n" +
	"finishedAt\x12#\n" +
	"\rerror_message\x18\b \x01(\tR\ferrorMessage\"B\n" +
	"\x16ListRenderJobsResponse\x12(\n" +
	"\x04jobs\x18\x01 \x03(\v2\x14.render.v1.RenderJobR\x04jobs\"m\n" +
	"\x18ExportUsageReportRequest\x12\x1b\n" +
	"\ttenant_id\x18\x01 \x01(\tR\btenantId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"K\n" +
	"\x19ExportUsageReportResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xb1\x02\n" +
	"\x12RenderAdminService\x12d\n" +
	"\x13GetQuoteRenderState\x12%.render.v1.GetQuoteRenderStateRequest\x1a&.render.v1.GetQuoteRenderStateResponse\x12U\n" +
	"\x0eListRenderJobs\x12 .render.v1.ListRenderJobsRequest\x1a!.render.v1.ListRenderJobsResponse\x12^\n" +
	"\x11ExportUsageReport\x12#.render.v1.ExportUsageReportRequest\x1a$.render.v1.ExportUsageReportResponseBCZAgithub.com/aiphotoquote-dotcom/aiphotoquote/gen/renderv1;renderv1b\x06proto3"

var (
	file_render_v1_render_proto_rawDescOnce sync.Once
	file_render_v1_render_proto_rawDescData []byte
)

func file_render_v1_render_proto_rawDescGZIP() []byte {
	file_render_v1_render_proto_rawDescOnce.Do(func() {
		file_render_v1_render_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_render_v1_render_proto_rawDesc), len(file_render_v1_render_proto_rawDesc)))
	})
	return file_render_v1_render_proto_rawDescData
}

var file_render_v1_render_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_render_v1_render_proto_goTypes = []any{
	(*GetQuoteRenderStateRequest)(nil),  // 0: render.v1.GetQuoteRenderStateRequest
	(*GetQuoteRenderStateResponse)(nil), // 1: render.v1.GetQuoteRenderStateResponse
	(*ListRenderJobsRequest)(nil),       // 2: render.v1.ListRenderJobsRequest
	(*RenderJob)(nil),                   // 3: render.v1.RenderJob
	(*ListRenderJobsResponse)(nil),      // 4: render.v1.ListRenderJobsResponse
	(*ExportUsageReportRequest)(nil),    // 5: render.v1.ExportUsageReportRequest
	(*ExportUsageReportResponse)(nil),   // 6: render.v1.ExportUsageReportResponse
}
var file_render_v1_render_proto_depIdxs = []int32{
	3, // 0: render.v1.ListRenderJobsResponse.jobs:type_name -> render.v1.RenderJob
	0, // 1: render.v1.RenderAdminService.GetQuoteRenderState:input_type -> render.v1.GetQuoteRenderStateRequest
	2, // 2: render.v1.RenderAdminService.ListRenderJobs:input_type -> render.v1.ListRenderJobsRequest
	5, // 3: render.v1.RenderAdminService.ExportUsageReport:input_type -> render.v1.ExportUsageReportRequest
	1, // 4: render.v1.RenderAdminService.GetQuoteRenderState:output_type -> render.v1.GetQuoteRenderStateResponse
	4, // 5: render.v1.RenderAdminService.ListRenderJobs:output_type -> render.v1.ListRenderJobsResponse
	6, // 6: render.v1.RenderAdminService.ExportUsageReport:output_type -> render.v1.ExportUsageReportResponse
	4, // [4:7] is the sub-list for method output_type
	1, // [1:4] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_render_v1_render_proto_init() }
func file_render_v1_render_proto_init() {
	if File_render_v1_render_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_render_v1_render_proto_rawDesc), len(file_render_v1_render_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_render_v1_render_proto_goTypes,
		DependencyIndexes: file_render_v1_render_proto_depIdxs,
		MessageInfos:      file_render_v1_render_proto_msgTypes,
	}.Build()
	File_render_v1_render_proto = out.File
	file_render_v1_render_proto_goTypes = nil
	file_render_v1_render_proto_depIdxs = nil
}
