package entities

import (
	"folio/crud"
	"folio/db"
	"folio/filemgr"
	"folio/models"
)

// The six portfolio resources, declared as field tables driving the shared
// CRUD engine. Adding an entity means adding a descriptor here and a route.

var Blogs crud.Handler = crud.NewResource[models.Blog](crud.Descriptor{
	Name:       "Blog",
	Collection: db.BlogsCollection,
	Fields: []crud.Field{
		{Name: "title", Kind: crud.KindString, Required: true},
		{Name: "description", Kind: crud.KindString, Required: true},
		{Name: "longDescription", Kind: crud.KindString, Required: true},
		{Name: "category", Kind: crud.KindString, Required: true},
		{Name: "author", Kind: crud.KindString, Required: true},
		{Name: "date", Kind: crud.KindString, Required: true},
		{Name: "readTime", Kind: crud.KindString, Required: true},
		{Name: "tags", Kind: crud.KindStringList},
		{Name: "featured", Kind: crud.KindBool},
	},
	ImageField: "imageUrl",
	Entity:     filemgr.EntityBlog,
})

var Certifications crud.Handler = crud.NewResource[models.Certification](crud.Descriptor{
	Name:       "Certification",
	Collection: db.CertificationsCollection,
	Fields: []crud.Field{
		{Name: "name", Kind: crud.KindString, Required: true},
		{Name: "issuingOrganization", Kind: crud.KindString, Required: true},
		{Name: "category", Kind: crud.KindString, Required: true},
		{Name: "issueDate", Kind: crud.KindDate},
		{Name: "expirationDate", Kind: crud.KindDate},
		{Name: "credentialID", Kind: crud.KindString},
		{Name: "credentialURL", Kind: crud.KindString},
		{Name: "tags", Kind: crud.KindStringList},
	},
	ImageField: "imageUrl",
	Entity:     filemgr.EntityCertification,
})

var Projects crud.Handler = crud.NewResource[models.Project](crud.Descriptor{
	Name:       "Project",
	Collection: db.ProjectsCollection,
	Fields: []crud.Field{
		{Name: "title", Kind: crud.KindString, Required: true},
		{Name: "description", Kind: crud.KindString, Required: true},
		{Name: "projectUrl", Kind: crud.KindString},
		{Name: "githubUrl", Kind: crud.KindString},
		{Name: "category", Kind: crud.KindString},
		{Name: "tags", Kind: crud.KindStringList},
	},
	ImageField: "imageUrl",
	Entity:     filemgr.EntityProject,
})

var Reviews crud.Handler = crud.NewResource[models.Review](crud.Descriptor{
	Name:       "Review",
	Collection: db.ReviewsCollection,
	Fields: []crud.Field{
		{Name: "reviewerName", Kind: crud.KindString, Required: true},
		{Name: "reviewContent", Kind: crud.KindString, Required: true},
		{Name: "rating", Kind: crud.KindInt, Min: 1, Max: 5},
		{Name: "featured", Kind: crud.KindBool},
		{Name: "date", Kind: crud.KindDate, DefaultNow: true},
	},
})

var Technologies crud.Handler = crud.NewResource[models.Technology](crud.Descriptor{
	Name:       "Technology",
	Collection: db.TechnologiesCollection,
	Fields: []crud.Field{
		{Name: "name", Kind: crud.KindString, Required: true},
		{Name: "iconUrl", Kind: crud.KindString},
		{Name: "featured", Kind: crud.KindBool},
	},
})
