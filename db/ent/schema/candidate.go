package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Candidate struct{ ent.Schema }

func (Candidate) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "candidates"},
	}
}

func (Candidate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("file_id", uuid.UUID{}),
		field.UUID("category_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("email").Optional(),
		field.String("phone").Optional(),
		field.Strings("skills"),
		field.Float("experience_years").Min(0).Default(0),
		field.String("education").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("degraded").Default(false),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Candidate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", ResumeFile.Type).
			Ref("candidates").
			Field("file_id").
			Unique().
			Required(),
		edge.From("category", Category.Type).
			Ref("candidates").
			Field("category_id").
			Unique().
			Required(),
		edge.To("jobs", ParseJob.Type),
	}
}

func (Candidate) Indexes() []ent.Index {
	return []ent.Index{
		// one candidate row per file; reprocessing updates it
		index.Fields("file_id").Unique(),
		index.Fields("category_id"),
		index.Fields("created_at"),
	}
}
