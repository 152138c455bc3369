package employeelistv1

import (
	"testing"

	"google.golang.org/grpc/encoding"
)

func TestCodec_RegisteredUnderServiceName(t *testing.T) {
	t.Parallel()

	codec := encoding.GetCodec(CodecName)
	if codec == nil {
		t.Fatalf("codec %q is not registered", CodecName)
	}
	if codec.Name() != "employeelist-json" {
		t.Fatalf("unexpected codec name %q", codec.Name())
	}

	b, err := codec.Marshal(&Employee{RecordId: "rec-1", Name: "Ada", Income: 90000, EmployeeId: "E1"})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	var got Employee
	if err := codec.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if got.RecordId != "rec-1" || got.Name != "Ada" {
		t.Fatalf("unexpected decoded employee: %+v", got)
	}
}
