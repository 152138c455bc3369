package server

import (
	"context"
	"net"
	"testing"
	"time"

	pb "github.com/ogurasousui/codex-employee-list/internal/adapters/grpc/gen/employeelist/v1"
	"github.com/ogurasousui/codex-employee-list/internal/adapters/slot/memory"
	"github.com/ogurasousui/codex-employee-list/internal/core/employee"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func startServer(t *testing.T, store *employee.Store) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := New("bufnet", store, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to dial bufconn: %v", err)
	}

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Serve returned error: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Errorf("server did not stop")
		}
	})

	return conn
}

func TestServer_EndToEnd(t *testing.T) {
	t.Parallel()

	slot := memory.NewSlot()
	store := employee.NewStore(slot, "", nil, nil)
	conn := startServer(t, store)
	client := pb.NewEmployeeListServiceClient(conn)
	ctx := context.Background()

	ada, err := client.AddEmployee(ctx, &pb.AddEmployeeRequest{Name: "Ada", Income: "90000", EmployeeId: "E1"})
	if err != nil {
		t.Fatalf("AddEmployee returned error: %v", err)
	}
	if _, err := client.AddEmployee(ctx, &pb.AddEmployeeRequest{Name: "Bo", Income: "50000", EmployeeId: "E2"}); err != nil {
		t.Fatalf("AddEmployee returned error: %v", err)
	}

	_, err = client.AddEmployee(ctx, &pb.AddEmployeeRequest{Name: "", Income: "50000", EmployeeId: "E3"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}

	list, err := client.ListEmployees(ctx, &pb.ListEmployeesRequest{})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if list.TotalCount != 2 || list.Summary.Average != 70000 || list.Summary.Max.GetName() != "Ada" {
		t.Fatalf("unexpected list response: %+v / %+v", list, list.Summary)
	}

	updated, err := client.UpdateEmployee(ctx, &pb.UpdateEmployeeRequest{RecordId: ada.Employee.RecordId, Name: ptr("Ada L")})
	if err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}
	if updated.Employee.Name != "Ada L" {
		t.Fatalf("unexpected updated name: %s", updated.Employee.Name)
	}

	if _, err := client.RemoveEmployee(ctx, &pb.RemoveEmployeeRequest{RecordId: ada.Employee.RecordId}); err != nil {
		t.Fatalf("RemoveEmployee returned error: %v", err)
	}
	again, err := client.RemoveEmployee(ctx, &pb.RemoveEmployeeRequest{RecordId: ada.Employee.RecordId})
	if err != nil || again.Employee != nil {
		t.Fatalf("expected idempotent remove, got %+v / %v", again, err)
	}

	exported, err := client.ExportEmployees(ctx, &pb.ExportEmployeesRequest{Format: "csv"})
	if err != nil {
		t.Fatalf("ExportEmployees returned error: %v", err)
	}
	if string(exported.Content) != "Name,Income,Employee ID\nBo,50000,E2\n" {
		t.Fatalf("unexpected export: %q", exported.Content)
	}

	payload, err := slot.Load(ctx, employee.DefaultSlotKey)
	if err != nil {
		t.Fatalf("slot should hold the persisted list: %v", err)
	}
	restored := employee.NewStore(memorySlotWith(t, payload), "", nil, nil)
	if err := restored.Restore(ctx); err != nil {
		t.Fatalf("Restore returned error: %v", err)
	}
	if got := restored.ListEmployees(); len(got) != 1 || got[0].Name != "Bo" {
		t.Fatalf("unexpected restored list: %+v", got)
	}
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	conn := startServer(t, employee.NewStore(memory.NewSlot(), "", nil, nil))

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: pb.ServiceName})
	if err != nil {
		t.Fatalf("health check returned error: %v", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("expected SERVING, got %v", resp.GetStatus())
	}
}

func memorySlotWith(t *testing.T, payload []byte) *memory.Slot {
	t.Helper()

	slot := memory.NewSlot()
	if err := slot.Save(context.Background(), employee.DefaultSlotKey, payload); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	return slot
}

func ptr(v string) *string {
	return &v
}
