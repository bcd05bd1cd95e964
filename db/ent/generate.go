package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Regenerate the client with: go run ./db/ent
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent",
			Schema:  "github.com/aiphotoquote-dotcom/aiphotoquote/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
