package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestCSVParser_Rows(t *testing.T) {
	input := "text,age,gender\nhello world,30,male\n\"goodbye, friend\",70,female\n"
	p := &CSVParser{}
	tree, err := p.Parse(strings.NewReader(input), "talk.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Root.Tag != "conversation" {
		t.Errorf("expected synthetic root, got %q", tree.Root.Tag)
	}
	us := tree.Root.ChildrenNamed("u")
	if len(us) != 2 {
		t.Fatalf("expected 2 utterances, got %d", len(us))
	}
	if us[1].Text != "goodbye, friend" {
		t.Errorf("expected quoted text, got %q", us[1].Text)
	}
	if us[1].Attr("age") != "70" || us[1].Attr("gender") != "female" {
		t.Errorf("unexpected attrs: %v", us[1].Attrs)
	}
}

func TestCSVParser_ColumnOrderAndMissing(t *testing.T) {
	input := "gender,text\nmale,hi there\n"
	p := &CSVParser{}
	tree, err := p.Parse(strings.NewReader(input), "talk.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u := tree.Root.Children[0]
	if u.Text != "hi there" {
		t.Errorf("expected %q, got %q", "hi there", u.Text)
	}
	if _, ok := u.Attrs["age"]; ok {
		t.Error("expected no age attribute")
	}
}

func TestCSVParser_MissingTextColumn(t *testing.T) {
	p := &CSVParser{}
	_, err := p.Parse(strings.NewReader("age,gender\n1,male\n"), "talk.csv")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestCSVParser_EmptyInput(t *testing.T) {
	p := &CSVParser{}
	tree, err := p.Parse(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Root.Children) != 0 {
		t.Errorf("expected 0 children, got %d", len(tree.Root.Children))
	}
}
