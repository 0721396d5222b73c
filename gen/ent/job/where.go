// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/medignis/docflow/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// DocumentClassID applies equality check predicate on the "document_class_id" field. It's identical to DocumentClassIDEQ.
func DocumentClassID(v uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDocumentClassID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFilename, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldContentType, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFileSize, v))
}

// Artifact applies equality check predicate on the "artifact" field. It's identical to ArtifactEQ.
func Artifact(v []byte) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldArtifact, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// AuxText applies equality check predicate on the "aux_text" field. It's identical to AuxTextEQ.
func AuxText(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAuxText, v))
}

// Consent applies equality check predicate on the "consent" field. It's identical to ConsentEQ.
func Consent(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldConsent, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCancelRequested, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFinishedAt, v))
}

// DocumentClassIDEQ applies the EQ predicate on the "document_class_id" field.
func DocumentClassIDEQ(v uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDocumentClassID, v))
}

// DocumentClassIDNEQ applies the NEQ predicate on the "document_class_id" field.
func DocumentClassIDNEQ(v uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldDocumentClassID, v))
}

// DocumentClassIDIn applies the In predicate on the "document_class_id" field.
func DocumentClassIDIn(vs ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldDocumentClassID, vs...))
}

// DocumentClassIDNotIn applies the NotIn predicate on the "document_class_id" field.
func DocumentClassIDNotIn(vs ...uuid.UUID) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldDocumentClassID, vs...))
}

// DocumentClassIDIsNil applies the IsNil predicate on the "document_class_id" field.
func DocumentClassIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldDocumentClassID))
}

// DocumentClassIDNotNil applies the NotNil predicate on the "document_class_id" field.
func DocumentClassIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldDocumentClassID))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldFilename, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldContentType, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldFileSize, v))
}

// ArtifactEQ applies the EQ predicate on the "artifact" field.
func ArtifactEQ(v []byte) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldArtifact, v))
}

// ArtifactNEQ applies the NEQ predicate on the "artifact" field.
func ArtifactNEQ(v []byte) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldArtifact, v))
}

// ArtifactIn applies the In predicate on the "artifact" field.
func ArtifactIn(vs ...[]byte) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldArtifact, vs...))
}

// ArtifactNotIn applies the NotIn predicate on the "artifact" field.
func ArtifactNotIn(vs ...[]byte) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldArtifact, vs...))
}

// ArtifactGT applies the GT predicate on the "artifact" field.
func ArtifactGT(v []byte) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldArtifact, v))
}

// ArtifactGTE applies the GTE predicate on the "artifact" field.
func ArtifactGTE(v []byte) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldArtifact, v))
}

// ArtifactLT applies the LT predicate on the "artifact" field.
func ArtifactLT(v []byte) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldArtifact, v))
}

// ArtifactLTE applies the LTE predicate on the "artifact" field.
func ArtifactLTE(v []byte) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldArtifact, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldStatus, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldResult))
}

// AuxTextEQ applies the EQ predicate on the "aux_text" field.
func AuxTextEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAuxText, v))
}

// AuxTextNEQ applies the NEQ predicate on the "aux_text" field.
func AuxTextNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldAuxText, v))
}

// AuxTextIn applies the In predicate on the "aux_text" field.
func AuxTextIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldAuxText, vs...))
}

// AuxTextNotIn applies the NotIn predicate on the "aux_text" field.
func AuxTextNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldAuxText, vs...))
}

// AuxTextGT applies the GT predicate on the "aux_text" field.
func AuxTextGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldAuxText, v))
}

// AuxTextGTE applies the GTE predicate on the "aux_text" field.
func AuxTextGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldAuxText, v))
}

// AuxTextLT applies the LT predicate on the "aux_text" field.
func AuxTextLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldAuxText, v))
}

// AuxTextLTE applies the LTE predicate on the "aux_text" field.
func AuxTextLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldAuxText, v))
}

// AuxTextContains applies the Contains predicate on the "aux_text" field.
func AuxTextContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldAuxText, v))
}

// AuxTextHasPrefix applies the HasPrefix predicate on the "aux_text" field.
func AuxTextHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldAuxText, v))
}

// AuxTextHasSuffix applies the HasSuffix predicate on the "aux_text" field.
func AuxTextHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldAuxText, v))
}

// AuxTextIsNil applies the IsNil predicate on the "aux_text" field.
func AuxTextIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldAuxText))
}

// AuxTextNotNil applies the NotNil predicate on the "aux_text" field.
func AuxTextNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldAuxText))
}

// AuxTextEqualFold applies the EqualFold predicate on the "aux_text" field.
func AuxTextEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldAuxText, v))
}

// AuxTextContainsFold applies the ContainsFold predicate on the "aux_text" field.
func AuxTextContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldAuxText, v))
}

// ConsentEQ applies the EQ predicate on the "consent" field.
func ConsentEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldConsent, v))
}

// ConsentNEQ applies the NEQ predicate on the "consent" field.
func ConsentNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldConsent, v))
}

// ConsentIn applies the In predicate on the "consent" field.
func ConsentIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldConsent, vs...))
}

// ConsentNotIn applies the NotIn predicate on the "consent" field.
func ConsentNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldConsent, vs...))
}

// ConsentGT applies the GT predicate on the "consent" field.
func ConsentGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldConsent, v))
}

// ConsentGTE applies the GTE predicate on the "consent" field.
func ConsentGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldConsent, v))
}

// ConsentLT applies the LT predicate on the "consent" field.
func ConsentLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldConsent, v))
}

// ConsentLTE applies the LTE predicate on the "consent" field.
func ConsentLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldConsent, v))
}

// ConsentContains applies the Contains predicate on the "consent" field.
func ConsentContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldConsent, v))
}

// ConsentHasPrefix applies the HasPrefix predicate on the "consent" field.
func ConsentHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldConsent, v))
}

// ConsentHasSuffix applies the HasSuffix predicate on the "consent" field.
func ConsentHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldConsent, v))
}

// ConsentEqualFold applies the EqualFold predicate on the "consent" field.
func ConsentEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldConsent, v))
}

// ConsentContainsFold applies the ContainsFold predicate on the "consent" field.
func ConsentContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldConsent, v))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCancelRequested, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldFinishedAt))
}

// HasDocumentClass applies the HasEdge predicate on the "document_class" edge.
func HasDocumentClass() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentClassTable, DocumentClassColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentClassWith applies the HasEdge predicate on the "document_class" edge with a given conditions (other predicates).
func HasDocumentClassWith(preds ...predicate.DocumentClass) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newDocumentClassStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExecutions applies the HasEdge predicate on the "executions" edge.
func HasExecutions() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionsWith applies the HasEdge predicate on the "executions" edge with a given conditions (other predicates).
func HasExecutionsWith(preds ...predicate.StepExecution) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
