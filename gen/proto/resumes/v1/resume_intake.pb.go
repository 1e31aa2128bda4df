// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.7
// 	protoc        (unknown)
// source: resumes/v1/resume_intake.proto

package resumesv1

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

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resume_intake_proto_rawDescGZIP(), []int{0}
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resume_intake_proto_rawDescGZIP(), []int{1}
}

func (x *IngestResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resume_intake_proto_rawDescGZIP(), []int{2}
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resume_intake_proto_rawDescGZIP(), []int{3}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type ReprocessFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessFileRequest) Reset() {
	*x = ReprocessFileRequest{}
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessFileRequest) ProtoMessage() {}

func (x *ReprocessFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessFileRequest.ProtoReflect.Descriptor instead.
func (*ReprocessFileRequest) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resume_intake_proto_rawDescGZIP(), []int{4}
}

func (x *ReprocessFileRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type ReprocessFileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessFileResponse) Reset() {
	*x = ReprocessFileResponse{}
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessFileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessFileResponse) ProtoMessage() {}

func (x *ReprocessFileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessFileResponse.ProtoReflect.Descriptor instead.
func (*ReprocessFileResponse) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resume_intake_proto_rawDescGZIP(), []int{5}
}

func (x *ReprocessFileResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type Candidate struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FileId          string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Name            string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Email           string                 `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	Phone           string                 `protobuf:"bytes,5,opt,name=phone,proto3" json:"phone,omitempty"`
	Skills          []string               `protobuf:"bytes,6,rep,name=skills,proto3" json:"skills,omitempty"`
	ExperienceYears float64                `protobuf:"fixed64,7,opt,name=experience_years,json=experienceYears,proto3" json:"experience_years,omitempty"`
	Education       string                 `protobuf:"bytes,8,opt,name=education,proto3" json:"education,omitempty"`
	Category        string                 `protobuf:"bytes,9,opt,name=category,proto3" json:"category,omitempty"`
	Degraded        bool                   `protobuf:"varint,10,opt,name=degraded,proto3" json:"degraded,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Candidate) Reset() {
	*x = Candidate{}
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Candidate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Candidate) ProtoMessage() {}

func (x *Candidate) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Candidate.ProtoReflect.Descriptor instead.
func (*Candidate) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resume_intake_proto_rawDescGZIP(), []int{6}
}

func (x *Candidate) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Candidate) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *Candidate) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Candidate) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Candidate) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Candidate) GetSkills() []string {
	if x != nil {
		return x.Skills
	}
	return nil
}

func (x *Candidate) GetExperienceYears() float64 {
	if x != nil {
		return x.ExperienceYears
	}
	return 0
}

func (x *Candidate) GetEducation() string {
	if x != nil {
		return x.Education
	}
	return ""
}

func (x *Candidate) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Candidate) GetDegraded() bool {
	if x != nil {
		return x.Degraded
	}
	return false
}

func (x *Candidate) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Candidate) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Category struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Keywords      string                 `protobuf:"bytes,4,opt,name=keywords,proto3" json:"keywords,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Category) Reset() {
	*x = Category{}
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Category) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Category) ProtoMessage() {}

func (x *Category) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Category.ProtoReflect.Descriptor instead.
func (*Category) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resume_intake_proto_rawDescGZIP(), []int{7}
}

func (x *Category) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Category) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Category) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Category) GetKeywords() string {
	if x != nil {
		return x.Keywords
	}
	return ""
}

type GetCandidateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCandidateRequest) Reset() {
	*x = GetCandidateRequest{}
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCandidateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCandidateRequest) ProtoMessage() {}

func (x *GetCandidateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCandidateRequest.ProtoReflect.Descriptor instead.
func (*GetCandidateRequest) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resume_intake_proto_rawDescGZIP(), []int{8}
}

func (x *GetCandidateRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetCandidateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Candidate     *Candidate             `protobuf:"bytes,1,opt,name=candidate,proto3" json:"candidate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCandidateResponse) Reset() {
	*x = GetCandidateResponse{}
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCandidateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCandidateResponse) ProtoMessage() {}

func (x *GetCandidateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCandidateResponse.ProtoReflect.Descriptor instead.
func (*GetCandidateResponse) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resume_intake_proto_rawDescGZIP(), []int{9}
}

func (x *GetCandidateResponse) GetCandidate() *Candidate {
	if x != nil {
		return x.Candidate
	}
	return nil
}

type ListCandidatesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CategoryId    string                 `protobuf:"bytes,1,opt,name=category_id,json=categoryId,proto3" json:"category_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	Skill         string                 `protobuf:"bytes,4,opt,name=skill,proto3" json:"skill,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCandidatesRequest) Reset() {
	*x = ListCandidatesRequest{}
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCandidatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCandidatesRequest) ProtoMessage() {}

func (x *ListCandidatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCandidatesRequest.ProtoReflect.Descriptor instead.
func (*ListCandidatesRequest) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resume_intake_proto_rawDescGZIP(), []int{10}
}

func (x *ListCandidatesRequest) GetCategoryId() string {
	if x != nil {
		return x.CategoryId
	}
	return ""
}

func (x *ListCandidatesRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListCandidatesRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

func (x *ListCandidatesRequest) GetSkill() string {
	if x != nil {
		return x.Skill
	}
	return ""
}

type ListCandidatesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Candidates    []*Candidate           `protobuf:"bytes,1,rep,name=candidates,proto3" json:"candidates,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCandidatesResponse) Reset() {
	*x = ListCandidatesResponse{}
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCandidatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCandidatesResponse) ProtoMessage() {}

func (x *ListCandidatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCandidatesResponse.ProtoReflect.Descriptor instead.
func (*ListCandidatesResponse) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resume_intake_proto_rawDescGZIP(), []int{11}
}

func (x *ListCandidatesResponse) GetCandidates() []*Candidate {
	if x != nil {
		return x.Candidates
	}
	return nil
}

type ListCategoriesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCategoriesRequest) Reset() {
	*x = ListCategoriesRequest{}
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCategoriesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCategoriesRequest) ProtoMessage() {}

func (x *ListCategoriesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCategoriesRequest.ProtoReflect.Descriptor instead.
func (*ListCategoriesRequest) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resume_intake_proto_rawDescGZIP(), []int{12}
}

type ListCategoriesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Categories    []*Category            `protobuf:"bytes,1,rep,name=categories,proto3" json:"categories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCategoriesResponse) Reset() {
	*x = ListCategoriesResponse{}
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCategoriesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCategoriesResponse) ProtoMessage() {}

func (x *ListCategoriesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCategoriesResponse.ProtoReflect.Descriptor instead.
func (*ListCategoriesResponse) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resume_intake_proto_rawDescGZIP(), []int{13}
}

func (x *ListCategoriesResponse) GetCategories() []*Category {
	if x != nil {
		return x.Categories
	}
	return nil
}

type ExportCandidatesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CategoryId    string                 `protobuf:"bytes,1,opt,name=category_id,json=categoryId,proto3" json:"category_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCandidatesRequest) Reset() {
	*x = ExportCandidatesRequest{}
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCandidatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCandidatesRequest) ProtoMessage() {}

func (x *ExportCandidatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCandidatesRequest.ProtoReflect.Descriptor instead.
func (*ExportCandidatesRequest) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resume_intake_proto_rawDescGZIP(), []int{14}
}

func (x *ExportCandidatesRequest) GetCategoryId() string {
	if x != nil {
		return x.CategoryId
	}
	return ""
}

type ExportCandidatesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCandidatesResponse) Reset() {
	*x = ExportCandidatesResponse{}
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCandidatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCandidatesResponse) ProtoMessage() {}

func (x *ExportCandidatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_resumes_v1_resume_intake_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCandidatesResponse.ProtoReflect.Descriptor instead.
func (*ExportCandidatesResponse) Descriptor() ([]byte, []int) {
	return file_resumes_v1_resume_intake_proto_rawDescGZIP(), []int{15}
}

func (x *ExportCandidatesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportCandidatesResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_resumes_v1_resume_intake_proto protoreflect.FileDescriptor

const file_resumes_v1_resume_intake_proto_rawDesc = "" +
	"\n" +
	"\x1eresumes/v1/resume_intake.proto\x12\n" +
	"resumes.v1\"'\n" +
	"\x11IngestFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"\xea\x01\n" +
	"\x0eIngestResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"V\n" +
	"\x16IngestDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x02 \x01(\bR\n" +
	"skipHidden\"\xdd\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x124\n" +
	"\aresults\x18\x06 \x03(\v2\x1a.resumes.v1.IngestResponseR\aresults\"/\n" +
	"\x14ReprocessFileRequest\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\".\n" +
	"\x15ReprocessFileResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\xcb\x02\n" +
	"\tCandidate\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x04 \x01(\tR\x05email\x12\x14\n" +
	"\x05phone\x18\x05 \x01(\tR\x05phone\x12\x16\n" +
	"\x06skills\x18\x06 \x03(\tR\x06skills\x12)\n" +
	"\x10experience_years\x18\a \x01(\x01R\x0fexperienceYears\x12\x1c\n" +
	"\teducation\x18\b \x01(\tR\teducation\x12\x1a\n" +
	"\bcategory\x18\t \x01(\tR\bcategory\x12\x1a\n" +
	"\bdegraded\x18\n" +
	" \x01(\bR\bdegraded\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAt\"l\n" +
	"\bCategory\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x1a\n" +
	"\bkeywords\x18\x04 \x01(\tR\bkeywords\"%\n" +
	"\x13GetCandidateRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"K\n" +
	"\x14GetCandidateResponse\x123\n" +
	"\tcandidate\x18\x01 \x01(\v2\x15.resumes.v1.CandidateR\tcandidate\"|\n" +
	"\x15ListCandidatesRequest\x12\x1f\n" +
	"\vcategory_id\x18\x01 \x01(\tR\n" +
	"categoryId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offset\x12\x14\n" +
	"\x05skill\x18\x04 \x01(\tR\x05skill\"O\n" +
	"\x16ListCandidatesResponse\x125\n" +
	"\n" +
	"candidates\x18\x01 \x03(\v2\x15.resumes.v1.CandidateR\n" +
	"candidates\"\x17\n" +
	"\x15ListCategoriesRequest\"N\n" +
	"\x16ListCategoriesResponse\x124\n" +
	"\n" +
	"categories\x18\x01 \x03(\v2\x14.resumes.v1.CategoryR\n" +
	"categories\":\n" +
	"\x17ExportCandidatesRequest\x12\x1f\n" +
	"\vcategory_id\x18\x01 \x01(\tR\n" +
	"categoryId\"J\n" +
	"\x18ExportCandidatesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\x8d\x02\n" +
	"\x10IngestionService\x12G\n" +
	"\n" +
	"IngestFile\x12\x1d.resumes.v1.IngestFileRequest\x1a\x1a.resumes.v1.IngestResponse\x12Z\n" +
	"\x0fIngestDirectory\x12\".resumes.v1.IngestDirectoryRequest\x1a#.resumes.v1.IngestDirectoryResponse\x12T\n" +
	"\rReprocessFile\x12 .resumes.v1.ReprocessFileRequest\x1a!.resumes.v1.ReprocessFileResponse2\x98\x02\n" +
	"\x11CandidatesService\x12Q\n" +
	"\fGetCandidate\x12\x1f.resumes.v1.GetCandidateRequest\x1a .resumes.v1.GetCandidateResponse\x12W\n" +
	"\x0eListCandidates\x12!.resumes.v1.ListCandidatesRequest\x1a\".resumes.v1.ListCandidatesResponse\x12W\n" +
	"\x0eListCategories\x12!.resumes.v1.ListCategoriesRequest\x1a\".resumes.v1.ListCategoriesResponse2n\n" +
	"\rExportService\x12]\n" +
	"\x10ExportCandidates\x12#.resumes.v1.ExportCandidatesRequest\x1a$.resumes.v1.ExportCandidatesResponseBCZAgithub.com/hirestack/resume-intake/gen/proto/resumes/v1;resumesv1b\x06proto3"

var (
	file_resumes_v1_resume_intake_proto_rawDescOnce sync.Once
	file_resumes_v1_resume_intake_proto_rawDescData []byte
)

func file_resumes_v1_resume_intake_proto_rawDescGZIP() []byte {
	file_resumes_v1_resume_intake_proto_rawDescOnce.Do(func() {
		file_resumes_v1_resume_intake_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_resumes_v1_resume_intake_proto_rawDesc), len(file_resumes_v1_resume_intake_proto_rawDesc)))
	})
	return file_resumes_v1_resume_intake_proto_rawDescData
}

var file_resumes_v1_resume_intake_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_resumes_v1_resume_intake_proto_goTypes = []any{
	(*IngestFileRequest)(nil),        // 0: resumes.v1.IngestFileRequest
	(*IngestResponse)(nil),           // 1: resumes.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),   // 2: resumes.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil),  // 3: resumes.v1.IngestDirectoryResponse
	(*ReprocessFileRequest)(nil),     // 4: resumes.v1.ReprocessFileRequest
	(*ReprocessFileResponse)(nil),    // 5: resumes.v1.ReprocessFileResponse
	(*Candidate)(nil),                // 6: resumes.v1.Candidate
	(*Category)(nil),                 // 7: resumes.v1.Category
	(*GetCandidateRequest)(nil),      // 8: resumes.v1.GetCandidateRequest
	(*GetCandidateResponse)(nil),     // 9: resumes.v1.GetCandidateResponse
	(*ListCandidatesRequest)(nil),    // 10: resumes.v1.ListCandidatesRequest
	(*ListCandidatesResponse)(nil),   // 11: resumes.v1.ListCandidatesResponse
	(*ListCategoriesRequest)(nil),    // 12: resumes.v1.ListCategoriesRequest
	(*ListCategoriesResponse)(nil),   // 13: resumes.v1.ListCategoriesResponse
	(*ExportCandidatesRequest)(nil),  // 14: resumes.v1.ExportCandidatesRequest
	(*ExportCandidatesResponse)(nil), // 15: resumes.v1.ExportCandidatesResponse
}
var file_resumes_v1_resume_intake_proto_depIdxs = []int32{
	1,  // 0: resumes.v1.IngestDirectoryResponse.results:type_name -> resumes.v1.IngestResponse
	6,  // 1: resumes.v1.GetCandidateResponse.candidate:type_name -> resumes.v1.Candidate
	6,  // 2: resumes.v1.ListCandidatesResponse.candidates:type_name -> resumes.v1.Candidate
	7,  // 3: resumes.v1.ListCategoriesResponse.categories:type_name -> resumes.v1.Category
	0,  // 4: resumes.v1.IngestionService.IngestFile:input_type -> resumes.v1.IngestFileRequest
	2,  // 5: resumes.v1.IngestionService.IngestDirectory:input_type -> resumes.v1.IngestDirectoryRequest
	4,  // 6: resumes.v1.IngestionService.ReprocessFile:input_type -> resumes.v1.ReprocessFileRequest
	8,  // 7: resumes.v1.CandidatesService.GetCandidate:input_type -> resumes.v1.GetCandidateRequest
	10, // 8: resumes.v1.CandidatesService.ListCandidates:input_type -> resumes.v1.ListCandidatesRequest
	12, // 9: resumes.v1.CandidatesService.ListCategories:input_type -> resumes.v1.ListCategoriesRequest
	14, // 10: resumes.v1.ExportService.ExportCandidates:input_type -> resumes.v1.ExportCandidatesRequest
	1,  // 11: resumes.v1.IngestionService.IngestFile:output_type -> resumes.v1.IngestResponse
	3,  // 12: resumes.v1.IngestionService.IngestDirectory:output_type -> resumes.v1.IngestDirectoryResponse
	5,  // 13: resumes.v1.IngestionService.ReprocessFile:output_type -> resumes.v1.ReprocessFileResponse
	9,  // 14: resumes.v1.CandidatesService.GetCandidate:output_type -> resumes.v1.GetCandidateResponse
	11, // 15: resumes.v1.CandidatesService.ListCandidates:output_type -> resumes.v1.ListCandidatesResponse
	13, // 16: resumes.v1.CandidatesService.ListCategories:output_type -> resumes.v1.ListCategoriesResponse
	15, // 17: resumes.v1.ExportService.ExportCandidates:output_type -> resumes.v1.ExportCandidatesResponse
	11, // [11:18] is the sub-list for method output_type
	4,  // [4:11] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_resumes_v1_resume_intake_proto_init() }
func file_resumes_v1_resume_intake_proto_init() {
	if File_resumes_v1_resume_intake_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_resumes_v1_resume_intake_proto_rawDesc), len(file_resumes_v1_resume_intake_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_resumes_v1_resume_intake_proto_goTypes,
		DependencyIndexes: file_resumes_v1_resume_intake_proto_depIdxs,
		MessageInfos:      file_resumes_v1_resume_intake_proto_msgTypes,
	}.Build()
	File_resumes_v1_resume_intake_proto = out.File
	file_resumes_v1_resume_intake_proto_goTypes = nil
	file_resumes_v1_resume_intake_proto_depIdxs = nil
}
