package js

import "testing"

func TestArrayRender(t *testing.T) {
	tests := []struct {
		name  string
		array Sequence
		want  string
	}{
		{"empty", NewArray[String](), "[]"},
		{"one element", NewArray(NewString("val1")), `["val1"]`},
		{"several elements", NewArray(NewString("val1"), NewString("val2")), `["val1","val2"]`},
		{"null dropped on insert", NewArray(NewString("val1"), String{}, NewString("val2")), `["val1","val2"]`},
		{
			name: "nested",
			array: NewArray(
				NewArray[Value](NewString("2015-10-30"), NewDouble(10)),
				NewArray[Value](NewString("2015-10-30"), NewDouble(20)),
			),
			want: `[["2015-10-30",10.000],["2015-10-30",20.000]]`,
		},
		{"nil object dropped", NewArray[Value](nil, (*Object)(nil), NewInt(0)), "[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.array.Render()
			if !ok {
				t.Fatal("arrays must always be present")
			}
			if got != tt.want {
				t.Errorf("Render() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestArrayAddChaining(t *testing.T) {
	a := NewArray[String]()
	a.Add(NewString("val1")).Add(String{}).Add(NewString("val2"))
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
	if a.IsEmpty() {
		t.Error("IsEmpty() = true")
	}
	items := a.Items()
	items[0] = NewString("changed")
	if got, _ := a.Render(); got != `["val1","val2"]` {
		t.Errorf("Items() must return a copy; Render() = %s", got)
	}
}

func TestArrayElementEmptiedAfterInsert(t *testing.T) {
	first := NewObject("").Set("xaxis", NewString("xaxis"))
	second := NewObject("").Set("yaxis", NewString("yaxis"))
	a := NewArray(first, second)
	first.Set("xaxis", String{})

	if got, _ := a.Render(); got != `[null,{yaxis:"yaxis"}]` {
		t.Errorf("Render() = %s", got)
	}
}

func TestOmitEmpty(t *testing.T) {
	if OmitEmpty(NewArray[Int]()) != nil {
		t.Error("OmitEmpty(empty) should be nil")
	}
	if OmitEmpty((*Array[Int])(nil)) != nil {
		t.Error("OmitEmpty(nil) should be nil")
	}
	got := Literal(OmitEmpty(NewArray(NewInt(1))), "")
	if got != "[1]" {
		t.Errorf("OmitEmpty(non-empty) = %s", got)
	}

	props := Properties{}.Add("labels", OmitEmpty(NewArray[String]()))
	if _, ok := RenderObject("legend", props); ok {
		t.Error("omitted empty array should leave the object absent")
	}
}
