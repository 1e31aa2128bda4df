// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hirestack/resume-intake/gen/ent/candidate"
	"github.com/hirestack/resume-intake/gen/ent/category"
	"github.com/hirestack/resume-intake/gen/ent/parsejob"
	"github.com/hirestack/resume-intake/gen/ent/predicate"
	"github.com/hirestack/resume-intake/gen/ent/resumefile"
)

// CandidateUpdate is the builder for updating Candidate entities.
type CandidateUpdate struct {
	config
	hooks    []Hook
	mutation *CandidateMutation
}

// Where appends a list predicates to the CandidateUpdate builder.
func (_u *CandidateUpdate) Where(ps ...predicate.Candidate) *CandidateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *CandidateUpdate) SetFileID(v uuid.UUID) *CandidateUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableFileID(v *uuid.UUID) *CandidateUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *CandidateUpdate) SetCategoryID(v uuid.UUID) *CandidateUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableCategoryID(v *uuid.UUID) *CandidateUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CandidateUpdate) SetName(v string) *CandidateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableName(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *CandidateUpdate) SetEmail(v string) *CandidateUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableEmail(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CandidateUpdate) ClearEmail() *CandidateUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CandidateUpdate) SetPhone(v string) *CandidateUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillablePhone(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CandidateUpdate) ClearPhone() *CandidateUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetSkills sets the "skills" field.
func (_u *CandidateUpdate) SetSkills(v []string) *CandidateUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *CandidateUpdate) AppendSkills(v []string) *CandidateUpdate {
	_u.mutation.AppendSkills(v)
	return _u
}

// SetExperienceYears sets the "experience_years" field.
func (_u *CandidateUpdate) SetExperienceYears(v float64) *CandidateUpdate {
	_u.mutation.ResetExperienceYears()
	_u.mutation.SetExperienceYears(v)
	return _u
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableExperienceYears(v *float64) *CandidateUpdate {
	if v != nil {
		_u.SetExperienceYears(*v)
	}
	return _u
}

// AddExperienceYears adds value to the "experience_years" field.
func (_u *CandidateUpdate) AddExperienceYears(v float64) *CandidateUpdate {
	_u.mutation.AddExperienceYears(v)
	return _u
}

// SetEducation sets the "education" field.
func (_u *CandidateUpdate) SetEducation(v string) *CandidateUpdate {
	_u.mutation.SetEducation(v)
	return _u
}

// SetNillableEducation sets the "education" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableEducation(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetEducation(*v)
	}
	return _u
}

// ClearEducation clears the value of the "education" field.
func (_u *CandidateUpdate) ClearEducation() *CandidateUpdate {
	_u.mutation.ClearEducation()
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *CandidateUpdate) SetDegraded(v bool) *CandidateUpdate {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableDegraded(v *bool) *CandidateUpdate {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CandidateUpdate) SetUpdatedAt(v time.Time) *CandidateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFile sets the "file" edge to the ResumeFile entity.
func (_u *CandidateUpdate) SetFile(v *ResumeFile) *CandidateUpdate {
	return _u.SetFileID(v.ID)
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *CandidateUpdate) SetCategory(v *Category) *CandidateUpdate {
	return _u.SetCategoryID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by IDs.
func (_u *CandidateUpdate) AddJobIDs(ids ...uuid.UUID) *CandidateUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ParseJob entity.
func (_u *CandidateUpdate) AddJobs(v ...*ParseJob) *CandidateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the CandidateMutation object of the builder.
func (_u *CandidateUpdate) Mutation() *CandidateMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the ResumeFile entity.
func (_u *CandidateUpdate) ClearFile() *CandidateUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *CandidateUpdate) ClearCategory() *CandidateUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// ClearJobs clears all "jobs" edges to the ParseJob entity.
func (_u *CandidateUpdate) ClearJobs() *CandidateUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ParseJob entities by IDs.
func (_u *CandidateUpdate) RemoveJobIDs(ids ...uuid.UUID) *CandidateUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ParseJob entities.
func (_u *CandidateUpdate) RemoveJobs(v ...*ParseJob) *CandidateUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CandidateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CandidateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CandidateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := candidate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CandidateUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := candidate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Candidate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExperienceYears(); ok {
		if err := candidate.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`ent: validator failed for field "Candidate.experience_years": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Candidate.file"`)
	}
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Candidate.category"`)
	}
	return nil
}

func (_u *CandidateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(candidate.Table, candidate.Columns, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(candidate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(candidate.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(candidate.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(candidate.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(candidate.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(candidate.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, candidate.FieldSkills, value)
		})
	}
	if value, ok := _u.mutation.ExperienceYears(); ok {
		_spec.SetField(candidate.FieldExperienceYears, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExperienceYears(); ok {
		_spec.AddField(candidate.FieldExperienceYears, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Education(); ok {
		_spec.SetField(candidate.FieldEducation, field.TypeString, value)
	}
	if _u.mutation.EducationCleared() {
		_spec.ClearField(candidate.FieldEducation, field.TypeString)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(candidate.FieldDegraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(candidate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidate.FileTable,
			Columns: []string{candidate.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resumefile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidate.FileTable,
			Columns: []string{candidate.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resumefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidate.CategoryTable,
			Columns: []string{candidate.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidate.CategoryTable,
			Columns: []string{candidate.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.JobsTable,
			Columns: []string{candidate.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.JobsTable,
			Columns: []string{candidate.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.JobsTable,
			Columns: []string{candidate.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CandidateUpdateOne is the builder for updating a single Candidate entity.
type CandidateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CandidateMutation
}

// SetFileID sets the "file_id" field.
func (_u *CandidateUpdateOne) SetFileID(v uuid.UUID) *CandidateUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableFileID(v *uuid.UUID) *CandidateUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *CandidateUpdateOne) SetCategoryID(v uuid.UUID) *CandidateUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableCategoryID(v *uuid.UUID) *CandidateUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CandidateUpdateOne) SetName(v string) *CandidateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableName(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *CandidateUpdateOne) SetEmail(v string) *CandidateUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableEmail(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *CandidateUpdateOne) ClearEmail() *CandidateUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CandidateUpdateOne) SetPhone(v string) *CandidateUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillablePhone(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *CandidateUpdateOne) ClearPhone() *CandidateUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetSkills sets the "skills" field.
func (_u *CandidateUpdateOne) SetSkills(v []string) *CandidateUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *CandidateUpdateOne) AppendSkills(v []string) *CandidateUpdateOne {
	_u.mutation.AppendSkills(v)
	return _u
}

// SetExperienceYears sets the "experience_years" field.
func (_u *CandidateUpdateOne) SetExperienceYears(v float64) *CandidateUpdateOne {
	_u.mutation.ResetExperienceYears()
	_u.mutation.SetExperienceYears(v)
	return _u
}

// SetNillableExperienceYears sets the "experience_years" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableExperienceYears(v *float64) *CandidateUpdateOne {
	if v != nil {
		_u.SetExperienceYears(*v)
	}
	return _u
}

// AddExperienceYears adds value to the "experience_years" field.
func (_u *CandidateUpdateOne) AddExperienceYears(v float64) *CandidateUpdateOne {
	_u.mutation.AddExperienceYears(v)
	return _u
}

// SetEducation sets the "education" field.
func (_u *CandidateUpdateOne) SetEducation(v string) *CandidateUpdateOne {
	_u.mutation.SetEducation(v)
	return _u
}

// SetNillableEducation sets the "education" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableEducation(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetEducation(*v)
	}
	return _u
}

// ClearEducation clears the value of the "education" field.
func (_u *CandidateUpdateOne) ClearEducation() *CandidateUpdateOne {
	_u.mutation.ClearEducation()
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *CandidateUpdateOne) SetDegraded(v bool) *CandidateUpdateOne {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableDegraded(v *bool) *CandidateUpdateOne {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CandidateUpdateOne) SetUpdatedAt(v time.Time) *CandidateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFile sets the "file" edge to the ResumeFile entity.
func (_u *CandidateUpdateOne) SetFile(v *ResumeFile) *CandidateUpdateOne {
	return _u.SetFileID(v.ID)
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *CandidateUpdateOne) SetCategory(v *Category) *CandidateUpdateOne {
	return _u.SetCategoryID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ParseJob entity by IDs.
func (_u *CandidateUpdateOne) AddJobIDs(ids ...uuid.UUID) *CandidateUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ParseJob entity.
func (_u *CandidateUpdateOne) AddJobs(v ...*ParseJob) *CandidateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the CandidateMutation object of the builder.
func (_u *CandidateUpdateOne) Mutation() *CandidateMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the ResumeFile entity.
func (_u *CandidateUpdateOne) ClearFile() *CandidateUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *CandidateUpdateOne) ClearCategory() *CandidateUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// ClearJobs clears all "jobs" edges to the ParseJob entity.
func (_u *CandidateUpdateOne) ClearJobs() *CandidateUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ParseJob entities by IDs.
func (_u *CandidateUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *CandidateUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ParseJob entities.
func (_u *CandidateUpdateOne) RemoveJobs(v ...*ParseJob) *CandidateUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the CandidateUpdate builder.
func (_u *CandidateUpdateOne) Where(ps ...predicate.Candidate) *CandidateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CandidateUpdateOne) Select(field string, fields ...string) *CandidateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Candidate entity.
func (_u *CandidateUpdateOne) Save(ctx context.Context) (*Candidate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateUpdateOne) SaveX(ctx context.Context) *Candidate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CandidateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CandidateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := candidate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CandidateUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := candidate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Candidate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExperienceYears(); ok {
		if err := candidate.ExperienceYearsValidator(v); err != nil {
			return &ValidationError{Name: "experience_years", err: fmt.Errorf(`ent: validator failed for field "Candidate.experience_years": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Candidate.file"`)
	}
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Candidate.category"`)
	}
	return nil
}

func (_u *CandidateUpdateOne) sqlSave(ctx context.Context) (_node *Candidate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(candidate.Table, candidate.Columns, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Candidate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, candidate.FieldID)
		for _, f := range fields {
			if !candidate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != candidate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(candidate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(candidate.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(candidate.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(candidate.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(candidate.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(candidate.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, candidate.FieldSkills, value)
		})
	}
	if value, ok := _u.mutation.ExperienceYears(); ok {
		_spec.SetField(candidate.FieldExperienceYears, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExperienceYears(); ok {
		_spec.AddField(candidate.FieldExperienceYears, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Education(); ok {
		_spec.SetField(candidate.FieldEducation, field.TypeString, value)
	}
	if _u.mutation.EducationCleared() {
		_spec.ClearField(candidate.FieldEducation, field.TypeString)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(candidate.FieldDegraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(candidate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidate.FileTable,
			Columns: []string{candidate.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resumefile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidate.FileTable,
			Columns: []string{candidate.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resumefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidate.CategoryTable,
			Columns: []string{candidate.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   candidate.CategoryTable,
			Columns: []string{candidate.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.JobsTable,
			Columns: []string{candidate.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.JobsTable,
			Columns: []string{candidate.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   candidate.JobsTable,
			Columns: []string{candidate.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parsejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Candidate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
