package vdom

import "testing"

func TestCreateElementSortsArgs(t *testing.T) {
	clicked := 0
	node := Div(
		ID("root"),
		Class("a"),
		nil,
		OnClick(func() { clicked++ }),
		Span("hi"),
		"tail",
		[]*VNode{P(), nil},
	)

	if node.Kind != KindElement || node.Tag != "div" {
		t.Fatalf("node = %v %q", node.Kind, node.Tag)
	}
	if node.Props["id"] != "root" {
		t.Errorf("id = %v", node.Props["id"])
	}
	if got := len(node.Children); got != 3 {
		t.Fatalf("children = %d, want 3", got)
	}
	if node.Children[1].Kind != KindText || node.Children[1].Text != "tail" {
		t.Errorf("string child = %+v", node.Children[1])
	}
	if !node.IsInteractive() {
		t.Fatal("expected interactive node")
	}
	if err := Invoke(node.Props["onclick"], Event{}); err != nil {
		t.Fatal(err)
	}
	if clicked != 1 {
		t.Errorf("clicked = %d", clicked)
	}
}

func TestClassAccumulates(t *testing.T) {
	node := Div(Class("a", "", "b"), Class("c"))
	if got := node.Props["class"]; got != "a b c" {
		t.Errorf("class = %q", got)
	}
}

func TestClasses(t *testing.T) {
	a := Classes("melt-tab", ClassIf{"melt-tab--active", true}, ClassIf{"melt-tab--disabled", false})
	if a.Value != "melt-tab melt-tab--active" {
		t.Errorf("class = %q", a.Value)
	}
}

func TestKeyIsNotAProp(t *testing.T) {
	node := Li(Key(3))
	if node.Key != "3" {
		t.Errorf("key = %q", node.Key)
	}
	if _, ok := node.Props["key"]; ok {
		t.Error("key leaked into props")
	}
}

func TestNilHandlerIsSkipped(t *testing.T) {
	var h func()
	node := Button(OnClick(nil), OnChange(h))
	// A typed nil func is still stored; an untyped nil is not.
	if _, ok := node.Props["onclick"]; ok {
		t.Error("untyped nil handler stored")
	}
}

func TestInvokeAdaptsSignatures(t *testing.T) {
	var gotEvent Event
	var gotValue string
	ev := Event{Type: "onchange", HID: "h1", Value: "b"}

	if err := Invoke(func(e Event) { gotEvent = e }, ev); err != nil {
		t.Fatal(err)
	}
	if gotEvent != ev {
		t.Errorf("event = %+v", gotEvent)
	}
	if err := Invoke(func(v string) { gotValue = v }, ev); err != nil {
		t.Fatal(err)
	}
	if gotValue != "b" {
		t.Errorf("value = %q", gotValue)
	}
	if err := Invoke(42, ev); err == nil {
		t.Error("expected error for non-func handler")
	}
}

func TestHelpers(t *testing.T) {
	if If(false, Div()) != nil {
		t.Error("If(false) returned a node")
	}
	if When(true, func() *VNode { return Span() }) == nil {
		t.Error("When(true) returned nil")
	}
	items := Range([]string{"a", "", "c"}, func(s string, _ int) *VNode {
		if s == "" {
			return nil
		}
		return Li(s)
	})
	if len(items) != 2 {
		t.Errorf("Range kept %d nodes", len(items))
	}
	frag := Fragment("x", Div(), nil, Func(func() *VNode { return Text("c") }))
	if frag.Kind != KindFragment || len(frag.Children) != 3 {
		t.Errorf("fragment = %+v", frag)
	}
	if frag.Children[2].Kind != KindComponent {
		t.Errorf("component child kind = %v", frag.Children[2].Kind)
	}
}

func TestWalk(t *testing.T) {
	tree := Div(Ul(Li("a"), Li("b")))
	count := 0
	Walk(tree, func(*VNode) { count++ })
	// div, ul, li, text, li, text
	if count != 6 {
		t.Errorf("visited %d nodes", count)
	}
}

func TestVoidElements(t *testing.T) {
	if !IsVoidElement("input") || IsVoidElement("div") {
		t.Error("void element table wrong")
	}
}
