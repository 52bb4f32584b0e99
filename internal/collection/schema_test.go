package collection

import "testing"

func TestValidateSidecarAcceptsFullDocument(t *testing.T) {
	result, err := ValidateSidecar([]byte(`{
  "name": "Proj",
  "author": "A",
  "author_email": "a@example.com",
  "author_github_id": "octo",
  "contents": ["alpha", "beta two"],
  "version": "1.0.0"
}`))
	if err != nil {
		t.Fatalf("ValidateSidecar() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("valid sidecar rejected: %s", result.Summary())
	}
}

func TestValidateSidecarReportsMissingName(t *testing.T) {
	result, err := ValidateSidecar([]byte(`{
  "author": "A",
  "author_email": "a@example.com",
  "author_github_id": "",
  "contents": []
}`))
	if err != nil {
		t.Fatalf("ValidateSidecar() error: %v", err)
	}
	if result.Valid {
		t.Fatal("sidecar without name accepted")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Keyword == "required" {
			found = true
		}
	}
	if !found {
		t.Errorf("no required-keyword issue in %+v", result.Issues)
	}
}

func TestValidateSidecarReportsWrongContentsType(t *testing.T) {
	result, err := ValidateSidecar([]byte(`{
  "name": "Proj",
  "author": "A",
  "author_email": "a@example.com",
  "author_github_id": "",
  "contents": "not-a-list"
}`))
	if err != nil {
		t.Fatalf("ValidateSidecar() error: %v", err)
	}
	if result.Valid {
		t.Fatal("sidecar with string contents accepted")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/contents" {
			found = true
		}
	}
	if !found {
		t.Errorf("no /contents issue in %+v", result.Issues)
	}
}

func TestValidateSidecarRejectsUnknownKeys(t *testing.T) {
	result, err := ValidateSidecar([]byte(`{
  "name": "Proj",
  "author": "A",
  "author_email": "a@example.com",
  "author_github_id": "",
  "contents": [],
  "surprise": 1
}`))
	if err != nil {
		t.Fatalf("ValidateSidecar() error: %v", err)
	}
	if result.Valid {
		t.Error("sidecar with unknown key accepted")
	}
}
