// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docflow/v1/docflow.proto

package docflowv1

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

type SubmitJobRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Filename    string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType string                 `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Artifact    []byte                 `protobuf:"bytes,3,opt,name=artifact,proto3" json:"artifact,omitempty"`
	// "GRANTED", "DECLINED" or empty for unknown
	Consent       string `protobuf:"bytes,4,opt,name=consent,proto3" json:"consent,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitJobRequest) Reset() {
	*x = SubmitJobRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitJobRequest) ProtoMessage() {}

func (x *SubmitJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitJobRequest.ProtoReflect.Descriptor instead.
func (*SubmitJobRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitJobRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *SubmitJobRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *SubmitJobRequest) GetArtifact() []byte {
	if x != nil {
		return x.Artifact
	}
	return nil
}

func (x *SubmitJobRequest) GetConsent() string {
	if x != nil {
		return x.Consent
	}
	return ""
}

type SubmitJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitJobResponse) Reset() {
	*x = SubmitJobResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitJobResponse) ProtoMessage() {}

func (x *SubmitJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitJobResponse.ProtoReflect.Descriptor instead.
func (*SubmitJobResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitJobResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *SubmitJobResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{2}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type Job struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename        string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType     string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	FileSize        int64                  `protobuf:"varint,4,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	Status          string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	Consent         string                 `protobuf:"bytes,6,opt,name=consent,proto3" json:"consent,omitempty"`
	DocumentClass   string                 `protobuf:"bytes,7,opt,name=document_class,json=documentClass,proto3" json:"document_class,omitempty"`
	CancelRequested bool                   `protobuf:"varint,8,opt,name=cancel_requested,json=cancelRequested,proto3" json:"cancel_requested,omitempty"`
	// merged step outputs as a JSON object
	ResultJson    string `protobuf:"bytes,9,opt,name=result_json,json=resultJson,proto3" json:"result_json,omitempty"`
	ErrorMessage  string `protobuf:"bytes,10,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt     string `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	StartedAt     string `protobuf:"bytes,12,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string `protobuf:"bytes,13,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{3}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Job) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *Job) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetConsent() string {
	if x != nil {
		return x.Consent
	}
	return ""
}

func (x *Job) GetDocumentClass() string {
	if x != nil {
		return x.DocumentClass
	}
	return ""
}

func (x *Job) GetCancelRequested() bool {
	if x != nil {
		return x.CancelRequested
	}
	return false
}

func (x *Job) GetResultJson() string {
	if x != nil {
		return x.ResultJson
	}
	return ""
}

func (x *Job) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Job) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *Job) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{4}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type CancelJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobRequest) Reset() {
	*x = CancelJobRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobRequest) ProtoMessage() {}

func (x *CancelJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobRequest.ProtoReflect.Descriptor instead.
func (*CancelJobRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{5}
}

func (x *CancelJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type CancelJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobResponse) Reset() {
	*x = CancelJobResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobResponse) ProtoMessage() {}

func (x *CancelJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobResponse.ProtoReflect.Descriptor instead.
func (*CancelJobResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{6}
}

func (x *CancelJobResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *CancelJobResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListJobExecutionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobExecutionsRequest) Reset() {
	*x = ListJobExecutionsRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobExecutionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobExecutionsRequest) ProtoMessage() {}

func (x *ListJobExecutionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobExecutionsRequest.ProtoReflect.Descriptor instead.
func (*ListJobExecutionsRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{7}
}

func (x *ListJobExecutionsRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type StepExecution struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	StepId        string                 `protobuf:"bytes,3,opt,name=step_id,json=stepId,proto3" json:"step_id,omitempty"`
	Position      int32                  `protobuf:"varint,4,opt,name=position,proto3" json:"position,omitempty"`
	StepName      string                 `protobuf:"bytes,5,opt,name=step_name,json=stepName,proto3" json:"step_name,omitempty"`
	OutputSummary string                 `protobuf:"bytes,6,opt,name=output_summary,json=outputSummary,proto3" json:"output_summary,omitempty"`
	MetadataJson  string                 `protobuf:"bytes,7,opt,name=metadata_json,json=metadataJson,proto3" json:"metadata_json,omitempty"`
	StartedAt     string                 `protobuf:"bytes,8,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,9,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StepExecution) Reset() {
	*x = StepExecution{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StepExecution) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StepExecution) ProtoMessage() {}

func (x *StepExecution) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StepExecution.ProtoReflect.Descriptor instead.
func (*StepExecution) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{8}
}

func (x *StepExecution) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *StepExecution) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *StepExecution) GetStepId() string {
	if x != nil {
		return x.StepId
	}
	return ""
}

func (x *StepExecution) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

func (x *StepExecution) GetStepName() string {
	if x != nil {
		return x.StepName
	}
	return ""
}

func (x *StepExecution) GetOutputSummary() string {
	if x != nil {
		return x.OutputSummary
	}
	return ""
}

func (x *StepExecution) GetMetadataJson() string {
	if x != nil {
		return x.MetadataJson
	}
	return ""
}

func (x *StepExecution) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *StepExecution) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type ListJobExecutionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Executions    []*StepExecution       `protobuf:"bytes,1,rep,name=executions,proto3" json:"executions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobExecutionsResponse) Reset() {
	*x = ListJobExecutionsResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobExecutionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobExecutionsResponse) ProtoMessage() {}

func (x *ListJobExecutionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobExecutionsResponse.ProtoReflect.Descriptor instead.
func (*ListJobExecutionsResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{9}
}

func (x *ListJobExecutionsResponse) GetExecutions() []*StepExecution {
	if x != nil {
		return x.Executions
	}
	return nil
}

type ListPipelineStepsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// empty lists every step; a class id lists universal plus class-scoped
	DocumentClassId string `protobuf:"bytes,1,opt,name=document_class_id,json=documentClassId,proto3" json:"document_class_id,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ListPipelineStepsRequest) Reset() {
	*x = ListPipelineStepsRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPipelineStepsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPipelineStepsRequest) ProtoMessage() {}

func (x *ListPipelineStepsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPipelineStepsRequest.ProtoReflect.Descriptor instead.
func (*ListPipelineStepsRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{10}
}

func (x *ListPipelineStepsRequest) GetDocumentClassId() string {
	if x != nil {
		return x.DocumentClassId
	}
	return ""
}

type PipelineStep struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentClassId    string                 `protobuf:"bytes,2,opt,name=document_class_id,json=documentClassId,proto3" json:"document_class_id,omitempty"`
	Name               string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Prompt             string                 `protobuf:"bytes,4,opt,name=prompt,proto3" json:"prompt,omitempty"`
	StepOrder          int32                  `protobuf:"varint,5,opt,name=step_order,json=stepOrder,proto3" json:"step_order,omitempty"`
	Enabled            bool                   `protobuf:"varint,6,opt,name=enabled,proto3" json:"enabled,omitempty"`
	IsBranching        bool                   `protobuf:"varint,7,opt,name=is_branching,json=isBranching,proto3" json:"is_branching,omitempty"`
	BranchingField     string                 `protobuf:"bytes,8,opt,name=branching_field,json=branchingField,proto3" json:"branching_field,omitempty"`
	PostBranching      bool                   `protobuf:"varint,9,opt,name=post_branching,json=postBranching,proto3" json:"post_branching,omitempty"`
	BranchLabels       []string               `protobuf:"bytes,10,rep,name=branch_labels,json=branchLabels,proto3" json:"branch_labels,omitempty"`
	StopConditionsJson string                 `protobuf:"bytes,11,opt,name=stop_conditions_json,json=stopConditionsJson,proto3" json:"stop_conditions_json,omitempty"`
	OutputSchemaJson   string                 `protobuf:"bytes,12,opt,name=output_schema_json,json=outputSchemaJson,proto3" json:"output_schema_json,omitempty"`
	ModelName          string                 `protobuf:"bytes,13,opt,name=model_name,json=modelName,proto3" json:"model_name,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *PipelineStep) Reset() {
	*x = PipelineStep{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PipelineStep) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PipelineStep) ProtoMessage() {}

func (x *PipelineStep) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PipelineStep.ProtoReflect.Descriptor instead.
func (*PipelineStep) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{11}
}

func (x *PipelineStep) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *PipelineStep) GetDocumentClassId() string {
	if x != nil {
		return x.DocumentClassId
	}
	return ""
}

func (x *PipelineStep) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *PipelineStep) GetPrompt() string {
	if x != nil {
		return x.Prompt
	}
	return ""
}

func (x *PipelineStep) GetStepOrder() int32 {
	if x != nil {
		return x.StepOrder
	}
	return 0
}

func (x *PipelineStep) GetEnabled() bool {
	if x != nil {
		return x.Enabled
	}
	return false
}

func (x *PipelineStep) GetIsBranching() bool {
	if x != nil {
		return x.IsBranching
	}
	return false
}

func (x *PipelineStep) GetBranchingField() string {
	if x != nil {
		return x.BranchingField
	}
	return ""
}

func (x *PipelineStep) GetPostBranching() bool {
	if x != nil {
		return x.PostBranching
	}
	return false
}

func (x *PipelineStep) GetBranchLabels() []string {
	if x != nil {
		return x.BranchLabels
	}
	return nil
}

func (x *PipelineStep) GetStopConditionsJson() string {
	if x != nil {
		return x.StopConditionsJson
	}
	return ""
}

func (x *PipelineStep) GetOutputSchemaJson() string {
	if x != nil {
		return x.OutputSchemaJson
	}
	return ""
}

func (x *PipelineStep) GetModelName() string {
	if x != nil {
		return x.ModelName
	}
	return ""
}

type ListPipelineStepsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Steps         []*PipelineStep        `protobuf:"bytes,1,rep,name=steps,proto3" json:"steps,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPipelineStepsResponse) Reset() {
	*x = ListPipelineStepsResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPipelineStepsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPipelineStepsResponse) ProtoMessage() {}

func (x *ListPipelineStepsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPipelineStepsResponse.ProtoReflect.Descriptor instead.
func (*ListPipelineStepsResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{12}
}

func (x *ListPipelineStepsResponse) GetSteps() []*PipelineStep {
	if x != nil {
		return x.Steps
	}
	return nil
}

type ListDocumentClassesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentClassesRequest) Reset() {
	*x = ListDocumentClassesRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentClassesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentClassesRequest) ProtoMessage() {}

func (x *ListDocumentClassesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentClassesRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentClassesRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{13}
}

type DocumentClass struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DocumentClass) Reset() {
	*x = DocumentClass{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DocumentClass) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DocumentClass) ProtoMessage() {}

func (x *DocumentClass) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DocumentClass.ProtoReflect.Descriptor instead.
func (*DocumentClass) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{14}
}

func (x *DocumentClass) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DocumentClass) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *DocumentClass) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type ListDocumentClassesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Classes       []*DocumentClass       `protobuf:"bytes,1,rep,name=classes,proto3" json:"classes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentClassesResponse) Reset() {
	*x = ListDocumentClassesResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentClassesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentClassesResponse) ProtoMessage() {}

func (x *ListDocumentClassesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentClassesResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentClassesResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{15}
}

func (x *ListDocumentClassesResponse) GetClasses() []*DocumentClass {
	if x != nil {
		return x.Classes
	}
	return nil
}

type GetBranchDistributionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StepId        string                 `protobuf:"bytes,1,opt,name=step_id,json=stepId,proto3" json:"step_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBranchDistributionRequest) Reset() {
	*x = GetBranchDistributionRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBranchDistributionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBranchDistributionRequest) ProtoMessage() {}

func (x *GetBranchDistributionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBranchDistributionRequest.ProtoReflect.Descriptor instead.
func (*GetBranchDistributionRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{16}
}

func (x *GetBranchDistributionRequest) GetStepId() string {
	if x != nil {
		return x.StepId
	}
	return ""
}

type GetBranchDistributionResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// outcome ("kind:label") to count
	Distribution  map[string]int64 `protobuf:"bytes,1,rep,name=distribution,proto3" json:"distribution,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBranchDistributionResponse) Reset() {
	*x = GetBranchDistributionResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBranchDistributionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBranchDistributionResponse) ProtoMessage() {}

func (x *GetBranchDistributionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBranchDistributionResponse.ProtoReflect.Descriptor instead.
func (*GetBranchDistributionResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{17}
}

func (x *GetBranchDistributionResponse) GetDistribution() map[string]int64 {
	if x != nil {
		return x.Distribution
	}
	return nil
}

type ExportAuditReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAuditReportRequest) Reset() {
	*x = ExportAuditReportRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAuditReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAuditReportRequest) ProtoMessage() {}

func (x *ExportAuditReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAuditReportRequest.ProtoReflect.Descriptor instead.
func (*ExportAuditReportRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{18}
}

func (x *ExportAuditReportRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ExportAuditReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAuditReportResponse) Reset() {
	*x = ExportAuditReportResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAuditReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAuditReportResponse) ProtoMessage() {}

func (x *ExportAuditReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAuditReportResponse.ProtoReflect.Descriptor instead.
func (*ExportAuditReportResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{19}
}

func (x *ExportAuditReportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_docflow_v1_docflow_proto protoreflect.FileDescriptor

const file_docflow_v1_docflow_proto_rawDesc = "" +
	"\n" +
	"\x18docflow/v1/docflow.proto\x12\n" +
	"docflow.v1\"\x87\x01\n" +
	"\x10SubmitJobRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x02 \x01(\tR\vcontentType\x12\x1a\n" +
	"\bartifact\x18\x03 \x01(\fR\bartifact\x12\x18\n" +
	"\aconsent\x18\x04 \x01(\tR\aconsent\"B\n" +
	"\x11SubmitJobResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\x9a\x03\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x12\x1b\n" +
	"\tfile_size\x18\x04 \x01(\x03R\bfileSize\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x18\n" +
	"\aconsent\x18\x06 \x01(\tR\aconsent\x12%\n" +
	"\x0edocument_class\x18\a \x01(\tR\rdocumentClass\x12)\n" +
	"\x10cancel_requested\x18\b \x01(\bR\x0fcancelRequested\x12\x1f\n" +
	"\vresult_json\x18\t \x01(\tR\n" +
	"resultJson\x12#\n" +
	"\rerror_message\x18\n" +
	" \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"started_at\x18\f \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\r \x01(\tR\n" +
	"finishedAt\"3\n" +
	"\x0eGetJobResponse\x12!\n" +
	"\x03job\x18\x01 \x01(\v2\x0f.docflow.v1.JobR\x03job\")\n" +
	"\x10CancelJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"B\n" +
	"\x11CancelJobResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"1\n" +
	"\x18ListJobExecutionsRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\x94\x02\n" +
	"\rStepExecution\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x17\n" +
	"\astep_id\x18\x03 \x01(\tR\x06stepId\x12\x1a\n" +
	"\bposition\x18\x04 \x01(\x05R\bposition\x12\x1b\n" +
	"\tstep_name\x18\x05 \x01(\tR\bstepName\x12%\n" +
	"\x0eoutput_summary\x18\x06 \x01(\tR\routputSummary\x12#\n" +
	"\rmetadata_json\x18\a \x01(\tR\fmetadataJson\x12\x1d\n" +
	"\n" +
	"started_at\x18\b \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\t \x01(\tR\n" +
	"finishedAt\"V\n" +
	"\x19ListJobExecutionsResponse\x129\n" +
	"\n" +
	"executions\x18\x01 \x03(\v2\x19.docflow.v1.StepExecutionR\n" +
	"executions\"F\n" +
	"\x18ListPipelineStepsRequest\x12*\n" +
	"\x11document_class_id\x18\x01 \x01(\tR\x0fdocumentClassId\"\xc6\x03\n" +
	"\fPipelineStep\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12*\n" +
	"\x11document_class_id\x18\x02 \x01(\tR\x0fdocumentClassId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x16\n" +
	"\x06prompt\x18\x04 \x01(\tR\x06prompt\x12\x1d\n" +
	"\n" +
	"step_order\x18\x05 \x01(\x05R\tstepOrder\x12\x18\n" +
	"\aenabled\x18\x06 \x01(\bR\aenabled\x12!\n" +
	"\fis_branching\x18\a \x01(\bR\visBranching\x12'\n" +
	"\x0fbranching_field\x18\b \x01(\tR\x0ebranchingField\x12%\n" +
	"\x0epost_branching\x18\t \x01(\bR\rpostBranching\x12#\n" +
	"\rbranch_labels\x18\n" +
	" \x03(\tR\fbranchLabels\x120\n" +
	"\x14stop_conditions_json\x18\v \x01(\tR\x12stopConditionsJson\x12,\n" +
	"\x12output_schema_json\x18\f \x01(\tR\x10outputSchemaJson\x12\x1d\n" +
	"\n" +
	"model_name\x18\r \x01(\tR\tmodelName\"K\n" +
	"\x19ListPipelineStepsResponse\x12.\n" +
	"\x05steps\x18\x01 \x03(\v2\x18.docflow.v1.PipelineStepR\x05steps\"\x1c\n" +
	"\x1aListDocumentClassesRequest\"U\n" +
	"\rDocumentClass\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\"R\n" +
	"\x1bListDocumentClassesResponse\x123\n" +
	"\aclasses\x18\x01 \x03(\v2\x19.docflow.v1.DocumentClassR\aclasses\"7\n" +
	"\x1cGetBranchDistributionRequest\x12\x17\n" +
	"\astep_id\x18\x01 \x01(\tR\x06stepId\"\xc1\x01\n" +
	"\x1dGetBranchDistributionResponse\x12_\n" +
	"\fdistribution\x18\x01 \x03(\v2;.docflow.v1.GetBranchDistributionResponse.DistributionEntryR\fdistribution\x1a?\n" +
	"\x11DistributionEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x03R\x05value:\x028\x01\"1\n" +
	"\x18ExportAuditReportRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"/\n" +
	"\x19ExportAuditReportResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xc3\x02\n" +
	"\n" +
	"JobService\x12H\n" +
	"\tSubmitJob\x12\x1c.docflow.v1.SubmitJobRequest\x1a\x1d.docflow.v1.SubmitJobResponse\x12?\n" +
	"\x06GetJob\x12\x19.docflow.v1.GetJobRequest\x1a\x1a.docflow.v1.GetJobResponse\x12H\n" +
	"\tCancelJob\x12\x1c.docflow.v1.CancelJobRequest\x1a\x1d.docflow.v1.CancelJobResponse\x12`\n" +
	"\x11ListJobExecutions\x12$.docflow.v1.ListJobExecutionsRequest\x1a%.docflow.v1.ListJobExecutionsResponse2\xc8\x02\n" +
	"\x0eCatalogService\x12`\n" +
	"\x11ListPipelineSteps\x12$.docflow.v1.ListPipelineStepsRequest\x1a%.docflow.v1.ListPipelineStepsResponse\x12f\n" +
	"\x13ListDocumentClasses\x12&.docflow.v1.ListDocumentClassesRequest\x1a'.docflow.v1.ListDocumentClassesResponse\x12l\n" +
	"\x15GetBranchDistribution\x12(.docflow.v1.GetBranchDistributionRequest\x1a).docflow.v1.GetBranchDistributionResponse2p\n" +
	"\fAuditService\x12`\n" +
	"\x11ExportAuditReport\x12$.docflow.v1.ExportAuditReportRequest\x1a%.docflow.v1.ExportAuditReportResponseB6Z4github.com/medignis/docflow/gen/docflow/v1;docflowv1b\x06proto3"

var (
	file_docflow_v1_docflow_proto_rawDescOnce sync.Once
	file_docflow_v1_docflow_proto_rawDescData []byte
)

func file_docflow_v1_docflow_proto_rawDescGZIP() []byte {
	file_docflow_v1_docflow_proto_rawDescOnce.Do(func() {
		file_docflow_v1_docflow_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docflow_v1_docflow_proto_rawDesc), len(file_docflow_v1_docflow_proto_rawDesc)))
	})
	return file_docflow_v1_docflow_proto_rawDescData
}

var file_docflow_v1_docflow_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_docflow_v1_docflow_proto_goTypes = []any{
	(*SubmitJobRequest)(nil),              // 0: docflow.v1.SubmitJobRequest
	(*SubmitJobResponse)(nil),             // 1: docflow.v1.SubmitJobResponse
	(*GetJobRequest)(nil),                 // 2: docflow.v1.GetJobRequest
	(*Job)(nil),                           // 3: docflow.v1.Job
	(*GetJobResponse)(nil),                // 4: docflow.v1.GetJobResponse
	(*CancelJobRequest)(nil),              // 5: docflow.v1.CancelJobRequest
	(*CancelJobResponse)(nil),             // 6: docflow.v1.CancelJobResponse
	(*ListJobExecutionsRequest)(nil),      // 7: docflow.v1.ListJobExecutionsRequest
	(*StepExecution)(nil),                 // 8: docflow.v1.StepExecution
	(*ListJobExecutionsResponse)(nil),     // 9: docflow.v1.ListJobExecutionsResponse
	(*ListPipelineStepsRequest)(nil),      // 10: docflow.v1.ListPipelineStepsRequest
	(*PipelineStep)(nil),                  // 11: docflow.v1.PipelineStep
	(*ListPipelineStepsResponse)(nil),     // 12: docflow.v1.ListPipelineStepsResponse
	(*ListDocumentClassesRequest)(nil),    // 13: docflow.v1.ListDocumentClassesRequest
	(*DocumentClass)(nil),                 // 14: docflow.v1.DocumentClass
	(*ListDocumentClassesResponse)(nil),   // 15: docflow.v1.ListDocumentClassesResponse
	(*GetBranchDistributionRequest)(nil),  // 16: docflow.v1.GetBranchDistributionRequest
	(*GetBranchDistributionResponse)(nil), // 17: docflow.v1.GetBranchDistributionResponse
	(*ExportAuditReportRequest)(nil),      // 18: docflow.v1.ExportAuditReportRequest
	(*ExportAuditReportResponse)(nil),     // 19: docflow.v1.ExportAuditReportResponse
	nil,                                   // 20: docflow.v1.GetBranchDistributionResponse.DistributionEntry
}
var file_docflow_v1_docflow_proto_depIdxs = []int32{
	3,  // 0: docflow.v1.GetJobResponse.job:type_name -> docflow.v1.Job
	8,  // 1: docflow.v1.ListJobExecutionsResponse.executions:type_name -> docflow.v1.StepExecution
	11, // 2: docflow.v1.ListPipelineStepsResponse.steps:type_name -> docflow.v1.PipelineStep
	14, // 3: docflow.v1.ListDocumentClassesResponse.classes:type_name -> docflow.v1.DocumentClass
	20, // 4: docflow.v1.GetBranchDistributionResponse.distribution:type_name -> docflow.v1.GetBranchDistributionResponse.DistributionEntry
	0,  // 5: docflow.v1.JobService.SubmitJob:input_type -> docflow.v1.SubmitJobRequest
	2,  // 6: docflow.v1.JobService.GetJob:input_type -> docflow.v1.GetJobRequest
	5,  // 7: docflow.v1.JobService.CancelJob:input_type -> docflow.v1.CancelJobRequest
	7,  // 8: docflow.v1.JobService.ListJobExecutions:input_type -> docflow.v1.ListJobExecutionsRequest
	10, // 9: docflow.v1.CatalogService.ListPipelineSteps:input_type -> docflow.v1.ListPipelineStepsRequest
	13, // 10: docflow.v1.CatalogService.ListDocumentClasses:input_type -> docflow.v1.ListDocumentClassesRequest
	16, // 11: docflow.v1.CatalogService.GetBranchDistribution:input_type -> docflow.v1.GetBranchDistributionRequest
	18, // 12: docflow.v1.AuditService.ExportAuditReport:input_type -> docflow.v1.ExportAuditReportRequest
	1,  // 13: docflow.v1.JobService.SubmitJob:output_type -> docflow.v1.SubmitJobResponse
	4,  // 14: docflow.v1.JobService.GetJob:output_type -> docflow.v1.GetJobResponse
	6,  // 15: docflow.v1.JobService.CancelJob:output_type -> docflow.v1.CancelJobResponse
	9,  // 16: docflow.v1.JobService.ListJobExecutions:output_type -> docflow.v1.ListJobExecutionsResponse
	12, // 17: docflow.v1.CatalogService.ListPipelineSteps:output_type -> docflow.v1.ListPipelineStepsResponse
	15, // 18: docflow.v1.CatalogService.ListDocumentClasses:output_type -> docflow.v1.ListDocumentClassesResponse
	17, // 19: docflow.v1.CatalogService.GetBranchDistribution:output_type -> docflow.v1.GetBranchDistributionResponse
	19, // 20: docflow.v1.AuditService.ExportAuditReport:output_type -> docflow.v1.ExportAuditReportResponse
	13, // [13:21] is the sub-list for method output_type
	5,  // [5:13] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_docflow_v1_docflow_proto_init() }
func file_docflow_v1_docflow_proto_init() {
	if File_docflow_v1_docflow_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docflow_v1_docflow_proto_rawDesc), len(file_docflow_v1_docflow_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_docflow_v1_docflow_proto_goTypes,
		DependencyIndexes: file_docflow_v1_docflow_proto_depIdxs,
		MessageInfos:      file_docflow_v1_docflow_proto_msgTypes,
	}.Build()
	File_docflow_v1_docflow_proto = out.File
	file_docflow_v1_docflow_proto_goTypes = nil
	file_docflow_v1_docflow_proto_depIdxs = nil
}
