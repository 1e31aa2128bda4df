// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CandidatesColumns holds the columns for the "candidates" table.
	CandidatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "skills", Type: field.TypeJSON},
		{Name: "experience_years", Type: field.TypeFloat64, Default: 0},
		{Name: "education", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "degraded", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "category_id", Type: field.TypeUUID},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// CandidatesTable holds the schema information for the "candidates" table.
	CandidatesTable = &schema.Table{
		Name:       "candidates",
		Columns:    CandidatesColumns,
		PrimaryKey: []*schema.Column{CandidatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "candidates_categories_candidates",
				Columns:    []*schema.Column{CandidatesColumns[10]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "candidates_resume_files_candidates",
				Columns:    []*schema.Column{CandidatesColumns[11]},
				RefColumns: []*schema.Column{ResumeFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "candidate_file_id",
				Unique:  true,
				Columns: []*schema.Column{CandidatesColumns[11]},
			},
			{
				Name:    "candidate_category_id",
				Unique:  false,
				Columns: []*schema.Column{CandidatesColumns[10]},
			},
			{
				Name:    "candidate_created_at",
				Unique:  false,
				Columns: []*schema.Column{CandidatesColumns[8]},
			},
		},
	}
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "keywords", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
	}
	// ParseJobsColumns holds the columns for the "parse_jobs" table.
	ParseJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "method", Type: field.TypeString, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "record_json", Type: field.TypeJSON, Nullable: true},
		{Name: "candidate_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ParseJobsTable holds the schema information for the "parse_jobs" table.
	ParseJobsTable = &schema.Table{
		Name:       "parse_jobs",
		Columns:    ParseJobsColumns,
		PrimaryKey: []*schema.Column{ParseJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "parse_jobs_candidates_jobs",
				Columns:    []*schema.Column{ParseJobsColumns[9]},
				RefColumns: []*schema.Column{CandidatesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "parse_jobs_resume_files_jobs",
				Columns:    []*schema.Column{ParseJobsColumns[10]},
				RefColumns: []*schema.Column{ResumeFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "parsejob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[4], ParseJobsColumns[2]},
			},
			{
				Name:    "parsejob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[10]},
			},
			{
				Name:    "parsejob_candidate_id",
				Unique:  false,
				Columns: []*schema.Column{ParseJobsColumns[9]},
			},
		},
	}
	// ResumeFilesColumns holds the columns for the "resume_files" table.
	ResumeFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// ResumeFilesTable holds the schema information for the "resume_files" table.
	ResumeFilesTable = &schema.Table{
		Name:       "resume_files",
		Columns:    ResumeFilesColumns,
		PrimaryKey: []*schema.Column{ResumeFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resumefile_content_hash",
				Unique:  true,
				Columns: []*schema.Column{ResumeFilesColumns[2]},
			},
			{
				Name:    "resumefile_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{ResumeFilesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CandidatesTable,
		CategoriesTable,
		ParseJobsTable,
		ResumeFilesTable,
	}
)

func init() {
	CandidatesTable.ForeignKeys[0].RefTable = CategoriesTable
	CandidatesTable.ForeignKeys[1].RefTable = ResumeFilesTable
	CandidatesTable.Annotation = &entsql.Annotation{
		Table: "candidates",
	}
	CategoriesTable.Annotation = &entsql.Annotation{
		Table: "categories",
	}
	ParseJobsTable.ForeignKeys[0].RefTable = CandidatesTable
	ParseJobsTable.ForeignKeys[1].RefTable = ResumeFilesTable
	ParseJobsTable.Annotation = &entsql.Annotation{
		Table: "parse_jobs",
	}
	ResumeFilesTable.Annotation = &entsql.Annotation{
		Table: "resume_files",
	}
}
