package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Blog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	LongDescription string             `bson:"longDescription" json:"longDescription"`
	Category        string             `bson:"category" json:"category"`
	Author          string             `bson:"author" json:"author"`
	Date            string             `bson:"date" json:"date"`
	ReadTime        string             `bson:"readTime" json:"readTime"`
	Tags            []string           `bson:"tags" json:"tags"`
	Featured        bool               `bson:"featured" json:"featured"`
	ImageURL        string             `bson:"imageUrl" json:"imageUrl"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Certification struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                string             `bson:"name" json:"name"`
	IssuingOrganization string             `bson:"issuingOrganization" json:"issuingOrganization"`
	Category            string             `bson:"category" json:"category"`
	IssueDate           *time.Time         `bson:"issueDate,omitempty" json:"issueDate,omitempty"`
	ExpirationDate      *time.Time         `bson:"expirationDate,omitempty" json:"expirationDate,omitempty"`
	CredentialID        string             `bson:"credentialID,omitempty" json:"credentialID,omitempty"`
	CredentialURL       string             `bson:"credentialURL,omitempty" json:"credentialURL,omitempty"`
	Tags                []string           `bson:"tags" json:"tags"`
	ImageURL            string             `bson:"imageUrl" json:"imageUrl"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	ProjectURL  string             `bson:"projectUrl,omitempty" json:"projectUrl,omitempty"`
	GithubURL   string             `bson:"githubUrl,omitempty" json:"githubUrl,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Tags        []string           `bson:"tags" json:"tags"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReviewerName  string             `bson:"reviewerName" json:"reviewerName"`
	ReviewContent string             `bson:"reviewContent" json:"reviewContent"`
	Rating        int                `bson:"rating,omitempty" json:"rating,omitempty"`
	Featured      bool               `bson:"featured" json:"featured"`
	Date          time.Time          `bson:"date" json:"date"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Technology struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	IconURL   string             `bson:"iconUrl,omitempty" json:"iconUrl,omitempty"`
	Featured  bool               `bson:"featured" json:"featured"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
