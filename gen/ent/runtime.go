// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/receipts-pipeline/db/ent/schema"
	"github.com/joseph-ayodele/receipts-pipeline/gen/ent/account"
	"github.com/joseph-ayodele/receipts-pipeline/gen/ent/extraction"
	"github.com/joseph-ayodele/receipts-pipeline/gen/ent/itemstat"
	"github.com/joseph-ayodele/receipts-pipeline/gen/ent/receiptitem"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[2].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	extractionFields := schema.Extraction{}.Fields()
	_ = extractionFields
	// extractionDescBucket is the schema descriptor for bucket field.
	extractionDescBucket := extractionFields[2].Descriptor()
	// extraction.BucketValidator is a validator for the "bucket" field. It is called by the builders before save.
	extraction.BucketValidator = extractionDescBucket.Validators[0].(func(string) error)
	// extractionDescObjectName is the schema descriptor for object_name field.
	extractionDescObjectName := extractionFields[3].Descriptor()
	// extraction.ObjectNameValidator is a validator for the "object_name" field. It is called by the builders before save.
	extraction.ObjectNameValidator = extractionDescObjectName.Validators[0].(func(string) error)
	// extractionDescGeneration is the schema descriptor for generation field.
	extractionDescGeneration := extractionFields[4].Descriptor()
	// extraction.GenerationValidator is a validator for the "generation" field. It is called by the builders before save.
	extraction.GenerationValidator = extractionDescGeneration.Validators[0].(func(string) error)
	// extractionDescStatus is the schema descriptor for status field.
	extractionDescStatus := extractionFields[8].Descriptor()
	// extraction.DefaultStatus holds the default value on creation for the status field.
	extraction.DefaultStatus = extractionDescStatus.Default.(string)
	// extraction.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extraction.StatusValidator = extractionDescStatus.Validators[0].(func(string) error)
	// extractionDescCreatedAt is the schema descriptor for created_at field.
	extractionDescCreatedAt := extractionFields[12].Descriptor()
	// extraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	extraction.DefaultCreatedAt = extractionDescCreatedAt.Default.(func() time.Time)
	// extractionDescUpdatedAt is the schema descriptor for updated_at field.
	extractionDescUpdatedAt := extractionFields[13].Descriptor()
	// extraction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extraction.DefaultUpdatedAt = extractionDescUpdatedAt.Default.(func() time.Time)
	// extraction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extraction.UpdateDefaultUpdatedAt = extractionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// extractionDescID is the schema descriptor for id field.
	extractionDescID := extractionFields[0].Descriptor()
	// extraction.DefaultID holds the default value on creation for the id field.
	extraction.DefaultID = extractionDescID.Default.(func() uuid.UUID)
	itemstatFields := schema.ItemStat{}.Fields()
	_ = itemstatFields
	// itemstatDescScope is the schema descriptor for scope field.
	itemstatDescScope := itemstatFields[1].Descriptor()
	// itemstat.ScopeValidator is a validator for the "scope" field. It is called by the builders before save.
	itemstat.ScopeValidator = itemstatDescScope.Validators[0].(func(string) error)
	// itemstatDescItemKey is the schema descriptor for item_key field.
	itemstatDescItemKey := itemstatFields[2].Descriptor()
	// itemstat.ItemKeyValidator is a validator for the "item_key" field. It is called by the builders before save.
	itemstat.ItemKeyValidator = itemstatDescItemKey.Validators[0].(func(string) error)
	// itemstatDescCount is the schema descriptor for count field.
	itemstatDescCount := itemstatFields[3].Descriptor()
	// itemstat.CountValidator is a validator for the "count" field. It is called by the builders before save.
	itemstat.CountValidator = itemstatDescCount.Validators[0].(func(int64) error)
	// itemstatDescUpdatedAt is the schema descriptor for updated_at field.
	itemstatDescUpdatedAt := itemstatFields[8].Descriptor()
	// itemstat.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	itemstat.DefaultUpdatedAt = itemstatDescUpdatedAt.Default.(func() time.Time)
	// itemstat.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	itemstat.UpdateDefaultUpdatedAt = itemstatDescUpdatedAt.UpdateDefault.(func() time.Time)
	// itemstatDescID is the schema descriptor for id field.
	itemstatDescID := itemstatFields[0].Descriptor()
	// itemstat.DefaultID holds the default value on creation for the id field.
	itemstat.DefaultID = itemstatDescID.Default.(func() uuid.UUID)
	receiptitemFields := schema.ReceiptItem{}.Fields()
	_ = receiptitemFields
	// receiptitemDescLineIndex is the schema descriptor for line_index field.
	receiptitemDescLineIndex := receiptitemFields[3].Descriptor()
	// receiptitem.LineIndexValidator is a validator for the "line_index" field. It is called by the builders before save.
	receiptitem.LineIndexValidator = receiptitemDescLineIndex.Validators[0].(func(int) error)
	// receiptitemDescName is the schema descriptor for name field.
	receiptitemDescName := receiptitemFields[4].Descriptor()
	// receiptitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	receiptitem.NameValidator = receiptitemDescName.Validators[0].(func(string) error)
	// receiptitemDescItemKey is the schema descriptor for item_key field.
	receiptitemDescItemKey := receiptitemFields[5].Descriptor()
	// receiptitem.ItemKeyValidator is a validator for the "item_key" field. It is called by the builders before save.
	receiptitem.ItemKeyValidator = receiptitemDescItemKey.Validators[0].(func(string) error)
	// receiptitemDescID is the schema descriptor for id field.
	receiptitemDescID := receiptitemFields[0].Descriptor()
	// receiptitem.DefaultID holds the default value on creation for the id field.
	receiptitem.DefaultID = receiptitemDescID.Default.(func() uuid.UUID)
}
