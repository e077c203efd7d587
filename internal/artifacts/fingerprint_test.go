package artifacts

import "testing"

type geoParams struct {
	TargetRows int      `json:"target_rows"`
	Currencies []string `json:"currencies"`
}

func TestFingerprintDeterministic(t *testing.T) {
	params := geoParams{TargetRows: 200, Currencies: []string{"USD", "EUR"}}
	upstream := map[string]string{"geography": "aaa", "dates": "bbb"}

	fp1, err := Fingerprint(params, upstream)
	if err != nil {
		t.Fatal(err)
	}
	fp2, err := Fingerprint(params, upstream)
	if err != nil {
		t.Fatal(err)
	}
	if fp1 != fp2 {
		t.Errorf("Same inputs produced different fingerprints: %s != %s", fp1, fp2)
	}
	if len(fp1) != 64 {
		t.Errorf("Expected 64 hex chars, got %d", len(fp1))
	}
}

func TestFingerprintParamSensitivity(t *testing.T) {
	base := geoParams{TargetRows: 200, Currencies: []string{"USD"}}
	changed := geoParams{TargetRows: 201, Currencies: []string{"USD"}}

	fp1, _ := Fingerprint(base, nil)
	fp2, _ := Fingerprint(changed, nil)
	if fp1 == fp2 {
		t.Error("Parameter change did not change fingerprint")
	}
}

func TestFingerprintUpstreamSensitivity(t *testing.T) {
	params := geoParams{TargetRows: 200}

	fp1, _ := Fingerprint(params, map[string]string{"geography": "aaa"})
	fp2, _ := Fingerprint(params, map[string]string{"geography": "bbb"})
	if fp1 == fp2 {
		t.Error("Upstream fingerprint change did not change fingerprint")
	}

	// No upstream at all is also distinct.
	fp3, _ := Fingerprint(params, nil)
	if fp3 == fp1 {
		t.Error("Missing upstream produced same fingerprint as present upstream")
	}
}

func TestFingerprintUpstreamOrderIndependent(t *testing.T) {
	params := geoParams{TargetRows: 200}

	// Maps iterate in random order; the fingerprint must not depend on it.
	for i := 0; i < 20; i++ {
		fp1, _ := Fingerprint(params, map[string]string{"a": "1", "b": "2", "c": "3"})
		fp2, _ := Fingerprint(params, map[string]string{"c": "3", "b": "2", "a": "1"})
		if fp1 != fp2 {
			t.Fatal("Fingerprint depends on upstream map iteration order")
		}
	}
}
