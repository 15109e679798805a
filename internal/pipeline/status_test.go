package pipeline

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestStatusLastSuccessPreserved(t *testing.T) {
	run1 := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	run2 := run1.Add(24 * time.Hour)

	prev := NewStatus()
	prev.RecordSuccess("The Earl", 12, run1)
	prev.Finalize(12, run1)

	next := NewStatus()
	next.RecordFailure("The Earl", errors.New("status 503"), prev, run2)
	next.Finalize(0, run2)

	vs := next.Venues["The Earl"]
	if vs.Success || vs.Error != "status 503" {
		t.Errorf("failure not recorded: %+v", vs)
	}
	if !vs.LastSuccess.Equal(run1) {
		t.Errorf("last_success = %v, expected %v", vs.LastSuccess, run1)
	}
	if vs.LastSuccessCount != 12 {
		t.Errorf("last_success_count = %d, expected 12", vs.LastSuccessCount)
	}
}

func TestStatusSummaryFlags(t *testing.T) {
	now := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)

	t.Run("all ok", func(t *testing.T) {
		s := NewStatus()
		s.RecordSuccess("A", 3, now)
		s.RecordSuccess("B", 4, now)
		s.Finalize(7, now)
		if !s.AllSuccess || !s.AnySuccess {
			t.Errorf("flags = all:%v any:%v", s.AllSuccess, s.AnySuccess)
		}
	})

	t.Run("partial failure", func(t *testing.T) {
		s := NewStatus()
		s.RecordSuccess("A", 3, now)
		s.RecordFailure("B", errors.New("boom"), nil, now)
		s.Finalize(3, now)
		if s.AllSuccess || !s.AnySuccess {
			t.Errorf("flags = all:%v any:%v", s.AllSuccess, s.AnySuccess)
		}
	})

	t.Run("total failure", func(t *testing.T) {
		s := NewStatus()
		s.RecordFailure("A", errors.New("boom"), nil, now)
		s.Finalize(0, now)
		if s.AllSuccess || s.AnySuccess {
			t.Errorf("flags = all:%v any:%v", s.AllSuccess, s.AnySuccess)
		}
	})

	t.Run("no venues", func(t *testing.T) {
		s := NewStatus()
		s.Finalize(0, now)
		if s.AllSuccess || s.AnySuccess {
			t.Errorf("empty run must not report success")
		}
	})
}

// The per-venue records expose a boolean success flag; downstream
// consumers check venues[name].success directly.
func TestStatusArtifactShape(t *testing.T) {
	now := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)

	s := NewStatus()
	s.RecordSuccess("The Earl", 12, now)
	s.RecordFailure("Fox Theatre", errors.New("status 503"), nil, now)
	s.Finalize(12, now)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded struct {
		Venues map[string]map[string]interface{} `json:"venues"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	earl := decoded.Venues["The Earl"]
	if ok, _ := earl["success"].(bool); !ok {
		t.Errorf("successful venue must emit success=true, got %v", earl)
	}
	fox := decoded.Venues["Fox Theatre"]
	if flag, present := fox["success"]; !present || flag.(bool) {
		t.Errorf("failed venue must emit success=false, got %v", fox)
	}
	if _, stray := fox["status"]; stray {
		t.Errorf("venue record must not carry a status field: %v", fox)
	}
}
