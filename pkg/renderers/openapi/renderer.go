// Package openapi renders the API outline from the scaffold as an OpenAPI 3
// document: authentication endpoints plus list/create/get/update/delete
// operations for every feature.
package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-ideaplan/pkg/plan"
	"github.com/goliatone/go-ideaplan/pkg/render"
	"github.com/goliatone/go-ideaplan/pkg/scaffold"
)

const (
	Name       = "openapi"
	apiVersion = "1.0.0"
)

type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

func New() *Renderer { return &Renderer{} }

func (r *Renderer) Name() string { return Name }

func (r *Renderer) ContentType() string { return "application/json" }

func (r *Renderer) Render(ctx context.Context, p plan.Plan, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := Document(p, opts.TitleOr(p.Idea))
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi renderer: validate document: %w", err)
	}

	var (
		out []byte
		err error
	)
	if opts.Compact {
		out, err = json.Marshal(doc)
	} else {
		out, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("openapi renderer: marshal document: %w", err)
	}
	return out, nil
}

// Document builds the OpenAPI description for p.
func Document(p plan.Plan, title string) *openapi3.T {
	slug := scaffold.Slug(p.Idea)
	if slug == "" {
		slug = "project"
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       title,
			Version:     apiVersion,
			Description: fmt.Sprintf("API outline for %q.", p.Idea),
		},
		Servers: openapi3.Servers{
			&openapi3.Server{URL: fmt.Sprintf("https://api.%s.com", slug)},
		},
		Paths: openapi3.NewPaths(),
	}

	addAuth(doc)
	for i, feature := range p.Analysis.Features {
		addResource(doc, feature, scaffold.FeatureSlug(feature, i))
	}
	return doc
}

func addAuth(doc *openapi3.T) {
	credentials := openapi3.NewObjectSchema().
		WithProperty("email", openapi3.NewStringSchema().WithFormat("email")).
		WithProperty("password", openapi3.NewStringSchema())
	credentials.Required = []string{"email", "password"}

	for _, action := range []string{"login", "register", "logout"} {
		op := newOperation(action, "Authentication", strings.ToUpper(action[:1])+action[1:])
		if action != "logout" {
			op.RequestBody = &openapi3.RequestBodyRef{
				Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(credentials),
			}
		}
		op.Responses.Set("200", response("Operation successful", envelope(openapi3.NewObjectSchema())))
		doc.Paths.Set("/auth/"+action, &openapi3.PathItem{Post: op})
	}
}

func addResource(doc *openapi3.T, feature, slug string) {
	name := pascal(slug)
	lower := strings.ToLower(feature)
	item := resourceSchema()

	list := newOperation("list"+name, feature, "Get all "+lower)
	list.Responses.Set("200", response("Operation successful", envelope(openapi3.NewArraySchema().WithItems(item))))

	create := newOperation("create"+name, feature, "Create new "+lower)
	create.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(item),
	}
	create.Responses.Set("201", response("Created", envelope(item)))

	get := newOperation("get"+name, feature, "Get specific "+lower)
	get.Parameters = idParameter()
	get.Responses.Set("200", response("Operation successful", envelope(item)))
	get.Responses.Set("404", response("Not found", nil))

	update := newOperation("update"+name, feature, "Update "+lower)
	update.Parameters = idParameter()
	update.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(item),
	}
	update.Responses.Set("200", response("Operation successful", envelope(item)))
	update.Responses.Set("404", response("Not found", nil))

	remove := newOperation("delete"+name, feature, "Delete "+lower)
	remove.Parameters = idParameter()
	remove.Responses.Set("204", response("Deleted", nil))
	remove.Responses.Set("404", response("Not found", nil))

	doc.Paths.Set("/api/"+slug, &openapi3.PathItem{Get: list, Post: create})
	doc.Paths.Set("/api/"+slug+"/{id}", &openapi3.PathItem{Get: get, Put: update, Delete: remove})
}

func newOperation(id, tag, summary string) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = id
	op.Summary = summary
	op.Tags = []string{tag}
	op.Responses = openapi3.NewResponsesWithCapacity(2)
	return op
}

func response(description string, schema *openapi3.Schema) *openapi3.ResponseRef {
	resp := openapi3.NewResponse().WithDescription(description)
	if schema != nil {
		resp = resp.WithJSONSchema(schema)
	}
	return &openapi3.ResponseRef{Value: resp}
}

func idParameter() openapi3.Parameters {
	return openapi3.Parameters{
		&openapi3.ParameterRef{Value: openapi3.NewPathParameter("id").WithSchema(openapi3.NewIntegerSchema())},
	}
}

func resourceSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewIntegerSchema()).
		WithProperty("title", openapi3.NewStringSchema()).
		WithProperty("description", openapi3.NewStringSchema()).
		WithProperty("created_at", openapi3.NewDateTimeSchema())
}

// envelope wraps data in the {success, data, message} response shape.
func envelope(data *openapi3.Schema) *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("success", openapi3.NewBoolSchema()).
		WithProperty("data", data).
		WithProperty("message", openapi3.NewStringSchema())
}

func pascal(slug string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(slug, func(r rune) bool { return r == '-' }) {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
