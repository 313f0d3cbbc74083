// Package database - Test parse tag index trên model.
package database

import "testing"

func TestParseOrder(t *testing.T) {
	if got := parseOrder("single:1"); got != 1 {
		t.Errorf("parseOrder(\"single:1\") = %d, muốn 1", got)
	}
	if got := parseOrder("single:1;order:-1"); got != -1 {
		t.Errorf("parseOrder với order:-1 = %d, muốn -1", got)
	}
	if got := parseOrder(""); got != 1 {
		t.Errorf("parseOrder với tag rỗng = %d, muốn mặc định 1", got)
	}
}

func TestParseIndexTag_Single(t *testing.T) {
	entries := parseIndexTag("single:1")
	if len(entries) != 1 {
		t.Fatalf("số entry = %d, muốn 1", len(entries))
	}
	if v, ok := entries[0]["single"]; !ok || v != "1" {
		t.Errorf("entry thiếu single:1, got %v", entries[0])
	}
}

func TestParseIndexTag_UniqueSparse(t *testing.T) {
	entries := parseIndexTag("unique,sparse")
	if len(entries) != 1 {
		t.Fatalf("số entry = %d, muốn 1", len(entries))
	}
	if _, ok := entries[0]["unique"]; !ok {
		t.Error("entry phải chứa key unique")
	}
	if _, ok := entries[0]["sparse"]; !ok {
		t.Error("entry phải chứa key sparse")
	}
}

func TestParseIndexTag_NhieuIndex(t *testing.T) {
	entries := parseIndexTag("single:1;unique,sparse;compound:status_created;ttl:3600")
	if len(entries) != 4 {
		t.Fatalf("số entry = %d, muốn 4", len(entries))
	}
	if entries[2]["compound"] != "status_created" {
		t.Errorf("compound = %q, muốn %q", entries[2]["compound"], "status_created")
	}
	if entries[3]["ttl"] != "3600" {
		t.Errorf("ttl = %q, muốn %q", entries[3]["ttl"], "3600")
	}
}
