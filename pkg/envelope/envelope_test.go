package envelope

import (
	"encoding/json"
	"testing"
)

func encode(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func TestOK_EmptyListIsKept(t *testing.T) {
	got := encode(t, OK([]string{}))
	if got != `{"success":true,"data":[]}` {
		t.Errorf("OK([]) = %s", got)
	}
}

func TestOKWithMessage(t *testing.T) {
	got := encode(t, OKWithMessage(map[string]string{"id": "PAT1"}, "listo"))
	if got != `{"success":true,"data":{"id":"PAT1"},"message":"listo"}` {
		t.Errorf("OKWithMessage = %s", got)
	}
}

func TestAck_OmitsData(t *testing.T) {
	got := encode(t, Ack("Cita cancelada exitosamente"))
	if got != `{"success":true,"message":"Cita cancelada exitosamente"}` {
		t.Errorf("Ack = %s", got)
	}
}

func TestFail(t *testing.T) {
	got := encode(t, Fail("Ruta no encontrada"))
	if got != `{"success":false,"error":"Ruta no encontrada"}` {
		t.Errorf("Fail = %s", got)
	}
}
