// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: receipts/v1/receipt_stats.proto

package receiptspb

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

type Extraction struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AccountId     string                 `protobuf:"bytes,2,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Bucket        string                 `protobuf:"bytes,3,opt,name=bucket,proto3" json:"bucket,omitempty"`
	ObjectName    string                 `protobuf:"bytes,4,opt,name=object_name,json=objectName,proto3" json:"object_name,omitempty"`
	Generation    string                 `protobuf:"bytes,5,opt,name=generation,proto3" json:"generation,omitempty"`
	Status        string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	FailureReason string                 `protobuf:"bytes,7,opt,name=failure_reason,json=failureReason,proto3" json:"failure_reason,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Extraction) Reset() {
	*x = Extraction{}
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Extraction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Extraction) ProtoMessage() {}

func (x *Extraction) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Extraction.ProtoReflect.Descriptor instead.
func (*Extraction) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipt_stats_proto_rawDescGZIP(), []int{0}
}

func (x *Extraction) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Extraction) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *Extraction) GetBucket() string {
	if x != nil {
		return x.Bucket
	}
	return ""
}

func (x *Extraction) GetObjectName() string {
	if x != nil {
		return x.ObjectName
	}
	return ""
}

func (x *Extraction) GetGeneration() string {
	if x != nil {
		return x.Generation
	}
	return ""
}

func (x *Extraction) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Extraction) GetFailureReason() string {
	if x != nil {
		return x.FailureReason
	}
	return ""
}

func (x *Extraction) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Extraction) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ReceiptItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ExtractionId  string                 `protobuf:"bytes,2,opt,name=extraction_id,json=extractionId,proto3" json:"extraction_id,omitempty"`
	AccountId     string                 `protobuf:"bytes,3,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	LineIndex     int32                  `protobuf:"varint,4,opt,name=line_index,json=lineIndex,proto3" json:"line_index,omitempty"`
	Name          string                 `protobuf:"bytes,5,opt,name=name,proto3" json:"name,omitempty"`
	ItemKey       string                 `protobuf:"bytes,6,opt,name=item_key,json=itemKey,proto3" json:"item_key,omitempty"`
	Quantity      float64                `protobuf:"fixed64,7,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPrice     string                 `protobuf:"bytes,8,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`        // decimal string
	LineTotal     string                 `protobuf:"bytes,9,opt,name=line_total,json=lineTotal,proto3" json:"line_total,omitempty"`        // decimal string
	PurchasedAt   string                 `protobuf:"bytes,10,opt,name=purchased_at,json=purchasedAt,proto3" json:"purchased_at,omitempty"` // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReceiptItem) Reset() {
	*x = ReceiptItem{}
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReceiptItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReceiptItem) ProtoMessage() {}

func (x *ReceiptItem) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReceiptItem.ProtoReflect.Descriptor instead.
func (*ReceiptItem) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipt_stats_proto_rawDescGZIP(), []int{1}
}

func (x *ReceiptItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ReceiptItem) GetExtractionId() string {
	if x != nil {
		return x.ExtractionId
	}
	return ""
}

func (x *ReceiptItem) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *ReceiptItem) GetLineIndex() int32 {
	if x != nil {
		return x.LineIndex
	}
	return 0
}

func (x *ReceiptItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ReceiptItem) GetItemKey() string {
	if x != nil {
		return x.ItemKey
	}
	return ""
}

func (x *ReceiptItem) GetQuantity() float64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *ReceiptItem) GetUnitPrice() string {
	if x != nil {
		return x.UnitPrice
	}
	return ""
}

func (x *ReceiptItem) GetLineTotal() string {
	if x != nil {
		return x.LineTotal
	}
	return ""
}

func (x *ReceiptItem) GetPurchasedAt() string {
	if x != nil {
		return x.PurchasedAt
	}
	return ""
}

type ItemStat struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scope         string                 `protobuf:"bytes,1,opt,name=scope,proto3" json:"scope,omitempty"` // account id or "GLOBAL"
	ItemKey       string                 `protobuf:"bytes,2,opt,name=item_key,json=itemKey,proto3" json:"item_key,omitempty"`
	Count         int64                  `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
	TotalSpend    string                 `protobuf:"bytes,4,opt,name=total_spend,json=totalSpend,proto3" json:"total_spend,omitempty"` // decimal string
	MinPrice      string                 `protobuf:"bytes,5,opt,name=min_price,json=minPrice,proto3" json:"min_price,omitempty"`       // decimal string
	MaxPrice      string                 `protobuf:"bytes,6,opt,name=max_price,json=maxPrice,proto3" json:"max_price,omitempty"`       // decimal string
	LastSeen      string                 `protobuf:"bytes,7,opt,name=last_seen,json=lastSeen,proto3" json:"last_seen,omitempty"`       // YYYY-MM-DD
	UpdatedAt     string                 `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ItemStat) Reset() {
	*x = ItemStat{}
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ItemStat) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ItemStat) ProtoMessage() {}

func (x *ItemStat) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ItemStat.ProtoReflect.Descriptor instead.
func (*ItemStat) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipt_stats_proto_rawDescGZIP(), []int{2}
}

func (x *ItemStat) GetScope() string {
	if x != nil {
		return x.Scope
	}
	return ""
}

func (x *ItemStat) GetItemKey() string {
	if x != nil {
		return x.ItemKey
	}
	return ""
}

func (x *ItemStat) GetCount() int64 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *ItemStat) GetTotalSpend() string {
	if x != nil {
		return x.TotalSpend
	}
	return ""
}

func (x *ItemStat) GetMinPrice() string {
	if x != nil {
		return x.MinPrice
	}
	return ""
}

func (x *ItemStat) GetMaxPrice() string {
	if x != nil {
		return x.MaxPrice
	}
	return ""
}

func (x *ItemStat) GetLastSeen() string {
	if x != nil {
		return x.LastSeen
	}
	return ""
}

func (x *ItemStat) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListExtractionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExtractionsRequest) Reset() {
	*x = ListExtractionsRequest{}
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExtractionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExtractionsRequest) ProtoMessage() {}

func (x *ListExtractionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExtractionsRequest.ProtoReflect.Descriptor instead.
func (*ListExtractionsRequest) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipt_stats_proto_rawDescGZIP(), []int{3}
}

func (x *ListExtractionsRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

type ListExtractionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Extractions   []*Extraction          `protobuf:"bytes,1,rep,name=extractions,proto3" json:"extractions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExtractionsResponse) Reset() {
	*x = ListExtractionsResponse{}
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExtractionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExtractionsResponse) ProtoMessage() {}

func (x *ListExtractionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExtractionsResponse.ProtoReflect.Descriptor instead.
func (*ListExtractionsResponse) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipt_stats_proto_rawDescGZIP(), []int{4}
}

func (x *ListExtractionsResponse) GetExtractions() []*Extraction {
	if x != nil {
		return x.Extractions
	}
	return nil
}

type ListItemsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	ItemKey       string                 `protobuf:"bytes,2,opt,name=item_key,json=itemKey,proto3" json:"item_key,omitempty"` // optional filter
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListItemsRequest) Reset() {
	*x = ListItemsRequest{}
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListItemsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListItemsRequest) ProtoMessage() {}

func (x *ListItemsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListItemsRequest.ProtoReflect.Descriptor instead.
func (*ListItemsRequest) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipt_stats_proto_rawDescGZIP(), []int{5}
}

func (x *ListItemsRequest) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *ListItemsRequest) GetItemKey() string {
	if x != nil {
		return x.ItemKey
	}
	return ""
}

type ListItemsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*ReceiptItem         `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListItemsResponse) Reset() {
	*x = ListItemsResponse{}
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListItemsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListItemsResponse) ProtoMessage() {}

func (x *ListItemsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListItemsResponse.ProtoReflect.Descriptor instead.
func (*ListItemsResponse) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipt_stats_proto_rawDescGZIP(), []int{6}
}

func (x *ListItemsResponse) GetItems() []*ReceiptItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type ListItemStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scope         string                 `protobuf:"bytes,1,opt,name=scope,proto3" json:"scope,omitempty"` // account id or "GLOBAL"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListItemStatsRequest) Reset() {
	*x = ListItemStatsRequest{}
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListItemStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListItemStatsRequest) ProtoMessage() {}

func (x *ListItemStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListItemStatsRequest.ProtoReflect.Descriptor instead.
func (*ListItemStatsRequest) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipt_stats_proto_rawDescGZIP(), []int{7}
}

func (x *ListItemStatsRequest) GetScope() string {
	if x != nil {
		return x.Scope
	}
	return ""
}

type ListItemStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stats         []*ItemStat            `protobuf:"bytes,1,rep,name=stats,proto3" json:"stats,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListItemStatsResponse) Reset() {
	*x = ListItemStatsResponse{}
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListItemStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListItemStatsResponse) ProtoMessage() {}

func (x *ListItemStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListItemStatsResponse.ProtoReflect.Descriptor instead.
func (*ListItemStatsResponse) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipt_stats_proto_rawDescGZIP(), []int{8}
}

func (x *ListItemStatsResponse) GetStats() []*ItemStat {
	if x != nil {
		return x.Stats
	}
	return nil
}

type ExportItemStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scope         string                 `protobuf:"bytes,1,opt,name=scope,proto3" json:"scope,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportItemStatsRequest) Reset() {
	*x = ExportItemStatsRequest{}
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportItemStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportItemStatsRequest) ProtoMessage() {}

func (x *ExportItemStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportItemStatsRequest.ProtoReflect.Descriptor instead.
func (*ExportItemStatsRequest) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipt_stats_proto_rawDescGZIP(), []int{9}
}

func (x *ExportItemStatsRequest) GetScope() string {
	if x != nil {
		return x.Scope
	}
	return ""
}

type ExportItemStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportItemStatsResponse) Reset() {
	*x = ExportItemStatsResponse{}
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportItemStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportItemStatsResponse) ProtoMessage() {}

func (x *ExportItemStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipt_stats_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportItemStatsResponse.ProtoReflect.Descriptor instead.
func (*ExportItemStatsResponse) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipt_stats_proto_rawDescGZIP(), []int{10}
}

func (x *ExportItemStatsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportItemStatsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_receipts_v1_receipt_stats_proto protoreflect.FileDescriptor

const file_receipts_v1_receipt_stats_proto_rawDesc = "" +
	"\n" +
	"\x1freceipts/v1/receipt_stats.proto\x12\vreceipts.v1\"\x91\x02\n" +
	"\n" +
	"Extraction\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"account_id\x18\x02 \x01(\tR\taccountId\x12\x16\n" +
	"\x06bucket\x18\x03 \x01(\tR\x06bucket\x12\x1f\n" +
	"\vobject_name\x18\x04 \x01(\tR\n" +
	"objectName\x12\x1e\n" +
	"\n" +
	"generation\x18\x05 \x01(\tR\n" +
	"generation\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12%\n" +
	"\x0efailure_reason\x18\a \x01(\tR\rfailureReason\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"\xac\x02\n" +
	"\vReceiptItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\rextraction_id\x18\x02 \x01(\tR\fextractionId\x12\x1d\n" +
	"\n" +
	"account_id\x18\x03 \x01(\tR\taccountId\x12\x1d\n" +
	"\n" +
	"line_index\x18\x04 \x01(\x05R\tlineIndex\x12\x12\n" +
	"\x04name\x18\x05 \x01(\tR\x04name\x12\x19\n" +
	"\bitem_key\x18\x06 \x01(\tR\aitemKey\x12\x1a\n" +
	"\bquantity\x18\a \x01(\x01R\bquantity\x12\x1d\n" +
	"\n" +
	"unit_price\x18\b \x01(\tR\tunitPrice\x12\x1d\n" +
	"\n" +
	"line_total\x18\t \x01(\tR\tlineTotal\x12!\n" +
	"\fpurchased_at\x18\n" +
	" \x01(\tR\vpurchasedAt\"\xe8\x01\n" +
	"\bItemStat\x12\x14\n" +
	"\x05scope\x18\x01 \x01(\tR\x05scope\x12\x19\n" +
	"\bitem_key\x18\x02 \x01(\tR\aitemKey\x12\x14\n" +
	"\x05count\x18\x03 \x01(\x03R\x05count\x12\x1f\n" +
	"\vtotal_spend\x18\x04 \x01(\tR\n" +
	"totalSpend\x12\x1b\n" +
	"\tmin_price\x18\x05 \x01(\tR\bminPrice\x12\x1b\n" +
	"\tmax_price\x18\x06 \x01(\tR\bmaxPrice\x12\x1b\n" +
	"\tlast_seen\x18\a \x01(\tR\blastSeen\x12\x1d\n" +
	"\n" +
	"updated_at\x18\b \x01(\tR\tupdatedAt\"7\n" +
	"\x16ListExtractionsRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\"T\n" +
	"\x17ListExtractionsResponse\x129\n" +
	"\vextractions\x18\x01 \x03(\v2\x17.receipts.v1.ExtractionR\vextractions\"L\n" +
	"\x10ListItemsRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12\x19\n" +
	"\bitem_key\x18\x02 \x01(\tR\aitemKey\"C\n" +
	"\x11ListItemsResponse\x12.\n" +
	"\x05items\x18\x01 \x03(\v2\x18.receipts.v1.ReceiptItemR\x05items\",\n" +
	"\x14ListItemStatsRequest\x12\x14\n" +
	"\x05scope\x18\x01 \x01(\tR\x05scope\"D\n" +
	"\x15ListItemStatsResponse\x12+\n" +
	"\x05stats\x18\x01 \x03(\v2\x15.receipts.v1.ItemStatR\x05stats\".\n" +
	"\x16ExportItemStatsRequest\x12\x14\n" +
	"\x05scope\x18\x01 \x01(\tR\x05scope\"I\n" +
	"\x17ExportItemStatsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xf5\x02\n" +
	"\x13ReceiptStatsService\x12\\\n" +
	"\x0fListExtractions\x12#.receipts.v1.ListExtractionsRequest\x1a$.receipts.v1.ListExtractionsResponse\x12J\n" +
	"\tListItems\x12\x1d.receipts.v1.ListItemsRequest\x1a\x1e.receipts.v1.ListItemsResponse\x12V\n" +
	"\rListItemStats\x12!.receipts.v1.ListItemStatsRequest\x1a\".receipts.v1.ListItemStatsResponse\x12\\\n" +
	"\x0fExportItemStats\x12#.receipts.v1.ExportItemStatsRequest\x1a$.receipts.v1.ExportItemStatsResponseBNZLgithub.com/joseph-ayodele/receipts-pipeline/gen/proto/receipts/v1;receiptspbb\x06proto3"

var (
	file_receipts_v1_receipt_stats_proto_rawDescOnce sync.Once
	file_receipts_v1_receipt_stats_proto_rawDescData []byte
)

func file_receipts_v1_receipt_stats_proto_rawDescGZIP() []byte {
	file_receipts_v1_receipt_stats_proto_rawDescOnce.Do(func() {
		file_receipts_v1_receipt_stats_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_receipts_v1_receipt_stats_proto_rawDesc), len(file_receipts_v1_receipt_stats_proto_rawDesc)))
	})
	return file_receipts_v1_receipt_stats_proto_rawDescData
}

var file_receipts_v1_receipt_stats_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_receipts_v1_receipt_stats_proto_goTypes = []any{
	(*Extraction)(nil),              // 0: receipts.v1.Extraction
	(*ReceiptItem)(nil),             // 1: receipts.v1.ReceiptItem
	(*ItemStat)(nil),                // 2: receipts.v1.ItemStat
	(*ListExtractionsRequest)(nil),  // 3: receipts.v1.ListExtractionsRequest
	(*ListExtractionsResponse)(nil), // 4: receipts.v1.ListExtractionsResponse
	(*ListItemsRequest)(nil),        // 5: receipts.v1.ListItemsRequest
	(*ListItemsResponse)(nil),       // 6: receipts.v1.ListItemsResponse
	(*ListItemStatsRequest)(nil),    // 7: receipts.v1.ListItemStatsRequest
	(*ListItemStatsResponse)(nil),   // 8: receipts.v1.ListItemStatsResponse
	(*ExportItemStatsRequest)(nil),  // 9: receipts.v1.ExportItemStatsRequest
	(*ExportItemStatsResponse)(nil), // 10: receipts.v1.ExportItemStatsResponse
}
var file_receipts_v1_receipt_stats_proto_depIdxs = []int32{
	0,  // 0: receipts.v1.ListExtractionsResponse.extractions:type_name -> receipts.v1.Extraction
	1,  // 1: receipts.v1.ListItemsResponse.items:type_name -> receipts.v1.ReceiptItem
	2,  // 2: receipts.v1.ListItemStatsResponse.stats:type_name -> receipts.v1.ItemStat
	3,  // 3: receipts.v1.ReceiptStatsService.ListExtractions:input_type -> receipts.v1.ListExtractionsRequest
	5,  // 4: receipts.v1.ReceiptStatsService.ListItems:input_type -> receipts.v1.ListItemsRequest
	7,  // 5: receipts.v1.ReceiptStatsService.ListItemStats:input_type -> receipts.v1.ListItemStatsRequest
	9,  // 6: receipts.v1.ReceiptStatsService.ExportItemStats:input_type -> receipts.v1.ExportItemStatsRequest
	4,  // 7: receipts.v1.ReceiptStatsService.ListExtractions:output_type -> receipts.v1.ListExtractionsResponse
	6,  // 8: receipts.v1.ReceiptStatsService.ListItems:output_type -> receipts.v1.ListItemsResponse
	8,  // 9: receipts.v1.ReceiptStatsService.ListItemStats:output_type -> receipts.v1.ListItemStatsResponse
	10, // 10: receipts.v1.ReceiptStatsService.ExportItemStats:output_type -> receipts.v1.ExportItemStatsResponse
	7,  // [7:11] is the sub-list for method output_type
	3,  // [3:7] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_receipts_v1_receipt_stats_proto_init() }
func file_receipts_v1_receipt_stats_proto_init() {
	if File_receipts_v1_receipt_stats_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_receipts_v1_receipt_stats_proto_rawDesc), len(file_receipts_v1_receipt_stats_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_receipts_v1_receipt_stats_proto_goTypes,
		DependencyIndexes: file_receipts_v1_receipt_stats_proto_depIdxs,
		MessageInfos:      file_receipts_v1_receipt_stats_proto_msgTypes,
	}.Build()
	File_receipts_v1_receipt_stats_proto = out.File
	file_receipts_v1_receipt_stats_proto_goTypes = nil
	file_receipts_v1_receipt_stats_proto_depIdxs = nil
}
