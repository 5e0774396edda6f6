package url

import "testing"

func TestTemplateMatchExtractsParams(t *testing.T) {
	tmpl, err := Compile("/users/{id}/posts/{postID}")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	result, ok := tmpl.Match("/users/42/posts/7")
	if !ok {
		t.Fatal("expected match")
	}
	if result.Params["id"] != "42" || result.Params["postID"] != "7" {
		t.Fatalf("params = %+v", result.Params)
	}
}

func TestTemplateMatchRejectsWrongShape(t *testing.T) {
	tmpl, err := Compile("/users/{id}")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if _, ok := tmpl.Match("/users/42/extra"); ok {
		t.Fatal("expected no match for extra path segment")
	}
}

func TestTemplateWithQueryExactValue(t *testing.T) {
	tmpl, err := Compile("/search")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	tmpl.WithQuery("lang", "en")

	if _, ok := tmpl.Match("/search?lang=fr"); ok {
		t.Fatal("expected no match for wrong query value")
	}
	if _, ok := tmpl.Match("/search?lang=en"); !ok {
		t.Fatal("expected match for correct query value")
	}
}

func TestTemplateWithQueryWildcard(t *testing.T) {
	tmpl, err := Compile("/search")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	tmpl.WithQuery("token", "*")

	if _, ok := tmpl.Match("/search"); ok {
		t.Fatal("expected no match: token missing")
	}
	if _, ok := tmpl.Match("/search?token=anything"); !ok {
		t.Fatal("expected match: wildcard accepts any value")
	}
}

func TestTemplateEscapesLiteralRegexChars(t *testing.T) {
	tmpl, err := Compile("/v1.0/{id}")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if _, ok := tmpl.Match("/v1X0/42"); ok {
		t.Fatal("literal '.' should not behave as regex wildcard")
	}
	if _, ok := tmpl.Match("/v1.0/42"); !ok {
		t.Fatal("expected literal match")
	}
}
