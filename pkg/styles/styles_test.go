package styles

import (
	"reflect"
	"strings"
	"testing"

	"github.com/meltui/melt/pkg/reactive"
)

func TestSheetMountsOncePerID(t *testing.T) {
	sheet := NewSheet()
	if !sheet.Mount("radio", "a{}") {
		t.Fatal("first mount rejected")
	}
	if sheet.Mount("radio", "b{}") {
		t.Error("second mount of radio accepted")
	}
	sheet.Mount("select", "c{}")

	if got := sheet.Styles(); !reflect.DeepEqual(got, []string{"a{}", "c{}"}) {
		t.Errorf("Styles = %v", got)
	}
	if got := sheet.IDs(); !reflect.DeepEqual(got, []string{"radio", "select"}) {
		t.Errorf("IDs = %v", got)
	}
}

func TestMountUsesProvidedSheet(t *testing.T) {
	sheet := NewSheet()
	root := reactive.NewRoot(func(o *reactive.Owner) {
		Provide(sheet)
		o.Child(func() {
			MountBuiltin("radio")
			MountBuiltin("radio")
			MountBuiltin("does-not-exist")
		})
	})
	defer root.Dispose()

	styles := sheet.Styles()
	if len(styles) != 1 {
		t.Fatalf("mounted %d sheets, want 1", len(styles))
	}
	if !strings.Contains(styles[0], ".melt-radio") {
		t.Errorf("unexpected css %q", styles[0])
	}
}

func TestMountWithoutSheetIsNoop(t *testing.T) {
	Mount("radio", "a{}")
}

func TestBuiltinIDs(t *testing.T) {
	ids, err := BuiltinIDs()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"button", "radio", "select", "tabbar"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
}
