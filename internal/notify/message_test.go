package notify

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/receipts-pipeline/internal/common"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		env     Envelope
		wantErr bool
		want    string // expected object name
	}{
		{
			name: "objectName field",
			env:  Envelope{Bucket: "b", ObjectName: "a/x.json", Generation: "1"},
			want: "a/x.json",
		},
		{
			name: "gcs name alias",
			env:  Envelope{Bucket: "b", Name: "a/x.json", Generation: "1"},
			want: "a/x.json",
		},
		{
			name: "objectName wins over alias",
			env:  Envelope{Bucket: "b", ObjectName: "a/x.json", Name: "other.json"},
			want: "a/x.json",
		},
		{
			name:    "missing bucket",
			env:     Envelope{ObjectName: "a/x.json"},
			wantErr: true,
		},
		{
			name:    "missing object name",
			env:     Envelope{Bucket: "b"},
			wantErr: true,
		},
		{
			name:    "whitespace-only object name",
			env:     Envelope{Bucket: "b", ObjectName: "   "},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Normalize(tt.env)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, common.ErrInvalidNotification) {
					t.Errorf("error = %v, want ErrInvalidNotification", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if msg.ObjectName != tt.want {
				t.Errorf("ObjectName = %q, want %q", msg.ObjectName, tt.want)
			}
		})
	}
}

func TestNormalizeFoldsEmptyMetadata(t *testing.T) {
	msg, err := Normalize(Envelope{Bucket: "b", ObjectName: "o", Metadata: map[string]string{}})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if msg.Metadata != nil {
		t.Errorf("empty metadata should fold to nil, got %v", msg.Metadata)
	}
}

func TestAccountID(t *testing.T) {
	owner := uuid.MustParse("3f7c0a4e-9b1d-4e5a-8c2f-1d6e7b8a9c0d")
	other := uuid.MustParse("11111111-2222-3333-4444-555555555555")

	tests := []struct {
		name    string
		msg     ProcessingMessage
		want    uuid.UUID
		wantErr bool
	}{
		{
			name: "leading path segment",
			msg:  ProcessingMessage{ObjectName: owner.String() + "/receipts/r1.json"},
			want: owner,
		},
		{
			name: "metadata override wins",
			msg: ProcessingMessage{
				ObjectName: owner.String() + "/receipts/r1.json",
				Metadata:   map[string]string{MetadataAccountKey: other.String()},
			},
			want: other,
		},
		{
			name:    "no uuid anywhere",
			msg:     ProcessingMessage{ObjectName: "uploads/r1.json"},
			wantErr: true,
		},
		{
			name: "malformed metadata override",
			msg: ProcessingMessage{
				ObjectName: owner.String() + "/r1.json",
				Metadata:   map[string]string{MetadataAccountKey: "not-a-uuid"},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.msg.AccountID()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, common.ErrInvalidNotification) {
					t.Errorf("error = %v, want ErrInvalidNotification", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("AccountID: %v", err)
			}
			if got != tt.want {
				t.Errorf("AccountID = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestIdentityString(t *testing.T) {
	id := Identity{Bucket: "receipts", ObjectName: "a/b.json", Generation: "1700000000000001"}
	want := "receipts/a/b.json#1700000000000001"
	if got := id.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
