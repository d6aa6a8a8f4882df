// Package schemas embeds the JSON Schema documents that form the wire
// contract between plan authors and the validator. The schema shape is
// part of the external contract and must not change between releases.
package schemas

import _ "embed"

// PlanSchema is the draft 2020-12 schema for plan documents.
//
//go:embed plan.schema.json
var PlanSchema []byte
