package beiform

import (
	"context"
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-beiform/pkg/contract"
	"github.com/goliatone/go-beiform/pkg/submit"
	"github.com/goliatone/go-beiform/pkg/testsupport"
)

func TestComputeEndToEnd(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/official/compute" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Status":"OK","BEI":0.78}`))
	}))
	defer ts.Close()

	out, err := Compute(context.Background(), ts.URL+"/api/v1", testsupport.MustLoadSnapshot(t, testsupport.Office))
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if out.Status != submit.StatusOK || out.Result == nil || *out.Result.BEI != 0.78 {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if out.Prepared.Contract == nil || !out.Prepared.Contract.Valid {
		t.Fatalf("expected the contract check to run and pass, got %+v", out.Prepared.Contract)
	}
	if got["building_area_m2"] != float64(1200) {
		t.Fatalf("unexpected request body %v", got)
	}
}

func TestComputeBlockedNeverCallsService(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer ts.Close()

	out, err := Compute(context.Background(), ts.URL, testsupport.MustLoadSnapshot(t, testsupport.Incomplete), WithContractCheck(false))
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if out.Status != submit.StatusBlocked || calls != 0 {
		t.Fatalf("expected a local block, got %+v after %d calls", out, calls)
	}
}

func TestNewSubmitterRejectsBadBaseURL(t *testing.T) {
	if _, _, err := NewSubmitter(context.Background(), "ftp://example.com"); err == nil {
		t.Fatalf("expected base url error")
	}
}

func TestDecodeValidateBuild(t *testing.T) {
	snap, err := Decode(testsupport.MustFixtureBytes(t, testsupport.Small))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res := Validate(snap); res.Blocking {
		t.Fatalf("unexpected block %+v", res)
	}
	p := BuildPayload(snap)
	if _, ok := p.OfficialInput.Section("elevators"); ok {
		t.Fatalf("small buildings must not submit exempt sections")
	}
}

func TestEmbeddedAssets(t *testing.T) {
	if _, err := fs.ReadFile(ContractFS(), contract.DefaultFile); err != nil {
		t.Fatalf("expected contract document: %v", err)
	}
	data, err := fs.ReadFile(ReferenceFS(), "ranges.yaml")
	if err != nil || !strings.Contains(string(data), "offices") {
		t.Fatalf("expected reference data, got %v", err)
	}
	entries, err := fs.ReadDir(EmbeddedTemplates(), ".")
	if err != nil || len(entries) == 0 {
		t.Fatalf("expected summary templates, got %v %v", entries, err)
	}
}
