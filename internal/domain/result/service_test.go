package result

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/vitalapp/api/internal/platform/store"
)

type seqIDs struct{ n int }

func (g *seqIDs) Next(prefix string) string {
	g.n++
	return fmt.Sprintf("%s%d", prefix, g.n)
}

func newTestService() *Service {
	svc := NewService(NewMemRepo(store.New()), &seqIDs{})
	svc.now = func() time.Time { return time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC) }
	return svc
}

func TestService_CreateResult(t *testing.T) {
	svc := newTestService()
	r, err := svc.CreateResult(context.Background(), CreateInput{
		PatientID:      "PAT1",
		TestType:       "blood",
		Values:         json.RawMessage(`{"glucose":{"value":95,"unit":"mg/dL"}}`),
		Interpretation: "normal",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID != "RES1" {
		t.Errorf("expected RES1, got %s", r.ID)
	}
	if r.Date != "2025-02-03T04:05:06.000Z" {
		t.Errorf("unexpected date %s", r.Date)
	}
	if string(r.Values) != `{"glucose":{"value":95,"unit":"mg/dL"}}` {
		t.Errorf("values not kept verbatim: %s", r.Values)
	}
}

func TestService_CreateResult_MissingFields(t *testing.T) {
	cases := map[string]CreateInput{
		"patientId": {TestType: "blood", Values: json.RawMessage(`{"a":1}`)},
		"testType":  {PatientID: "PAT1", Values: json.RawMessage(`{"a":1}`)},
		"values":    {PatientID: "PAT1", TestType: "blood"},
		"nullValue": {PatientID: "PAT1", TestType: "blood", Values: json.RawMessage(`null`)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			svc := newTestService()
			if _, err := svc.CreateResult(context.Background(), in); !errors.Is(err, ErrIncomplete) {
				t.Fatalf("expected ErrIncomplete, got %v", err)
			}
			items, _ := svc.ListResultsByPatient(context.Background(), "PAT1")
			if len(items) != 0 {
				t.Errorf("expected nothing stored, got %d", len(items))
			}
		})
	}
}

func TestService_ListResultsByPatient(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	vals := json.RawMessage(`{"a":1}`)
	svc.CreateResult(ctx, CreateInput{PatientID: "PAT1", TestType: "blood", Values: vals})
	svc.CreateResult(ctx, CreateInput{PatientID: "PAT2", TestType: "urine", Values: vals})
	svc.CreateResult(ctx, CreateInput{PatientID: "PAT1", TestType: "xray", Values: vals})

	items, err := svc.ListResultsByPatient(ctx, "PAT1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].TestType != "blood" || items[1].TestType != "xray" {
		t.Errorf("unexpected results %+v", items)
	}

	none, err := svc.ListResultsByPatient(ctx, "UNKNOWN")
	if err != nil || none == nil || len(none) != 0 {
		t.Errorf("expected empty list, got %#v, %v", none, err)
	}
}
