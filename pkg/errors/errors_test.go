package errors

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestHoistErrorWithKey(t *testing.T) {
	err := &HoistError{
		Op:   "state.Restore",
		Kind: KindRestore,
		Key:  "water/count",
		Err:  &ParseError{Source: "bundle", DataType: "int", Got: "ten"},
	}
	got := err.Error()
	want := "state.Restore [restore] key=water/count: failed to parse int from bundle: got string"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestHoistErrorUnwrap(t *testing.T) {
	inner := &ParseError{Source: "x", DataType: "y"}
	err := &HoistError{Op: "op", Err: inner}
	if err.Unwrap() != inner {
		t.Error("Unwrap should return the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindRestore, "restore"},
		{KindParsing, "parsing"},
		{KindInit, "init"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{KindBuild, "build"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom"}
	if got := err.Error(); got != "panic: boom" {
		t.Errorf("Error() = %q", got)
	}
	err.Op = "engine.HandlePointer"
	if got := err.Error(); got != "panic in engine.HandlePointer: boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestBuildErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *BuildError
		want string
	}{
		{
			name: "panic",
			err:  &BuildError{Widget: "samples.CounterView", Recovered: "nil map"},
			want: "panic in samples.CounterView.Build(): nil map",
		},
		{
			name: "error",
			err:  &BuildError{Widget: "samples.CounterView", Err: &ParseError{Source: "a", DataType: "b", Got: 1}},
			want: "error in samples.CounterView.Build(): failed to parse b from a: got int",
		},
		{
			name: "unknown",
			err:  &BuildError{Widget: "samples.CounterView"},
			want: "unknown error in samples.CounterView.Build()",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReportFillsTimestamp(t *testing.T) {
	var captured *HoistError
	restore := swapHandler(&testHandler{onError: func(err *HoistError) { captured = err }})
	defer restore()

	Report(&HoistError{Op: "test.op", Kind: KindInit})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNilIsIgnored(t *testing.T) {
	called := false
	restore := swapHandler(&testHandler{
		onError:      func(*HoistError) { called = true },
		onPanic:      func(*PanicError) { called = true },
		onBuildError: func(*BuildError) { called = true },
	})
	defer restore()

	Report(nil)
	ReportPanic(nil)
	ReportBuildError(nil)

	if called {
		t.Error("nil errors should not reach the handler")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	restore := swapHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer restore()

	func() {
		defer Recover("test.recover")
		panic("intentional")
	}()

	if captured == nil {
		t.Fatal("expected panic to be captured")
	}
	if captured.Op != "test.recover" || captured.Value != "intentional" {
		t.Errorf("captured = %+v", captured)
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	restore := swapHandler(&testHandler{})
	defer restore()

	var got any
	func() {
		defer RecoverWithCallback("test.cb", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback got %v, want 42", got)
	}
}

func TestSetHandlerNil(t *testing.T) {
	old := DefaultHandler
	defer SetHandler(old)

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should install LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}

	h.HandleError(&HoistError{Op: "state.Restore", Kind: KindRestore, Key: "a/b", Err: &ParseError{Source: "s", DataType: "int", Got: "x"}})
	if got := buf.String(); got != "[hoist error] state.Restore: failed to parse int from s: got string\n" {
		t.Errorf("plain line = %q", got)
	}

	buf.Reset()
	h.Verbose = true
	h.HandleError(&HoistError{Op: "state.Restore", Kind: KindRestore, Key: "a/b", Err: &ParseError{Source: "s", DataType: "int", Got: "x"}})
	if !strings.Contains(buf.String(), "[restore] key=a/b") {
		t.Errorf("verbose line = %q", buf.String())
	}

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "engine.Frame", Value: "x", Timestamp: time.Now()})
	if !strings.HasPrefix(buf.String(), "[hoist panic] engine.Frame: x") {
		t.Errorf("panic line = %q", buf.String())
	}

	buf.Reset()
	h.HandleBuildError(&BuildError{Widget: "W", Recovered: "r"})
	if got := buf.String(); got != "[hoist build error] panic in W.Build(): r\n" {
		t.Errorf("build line = %q", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func swapHandler(h ErrorHandler) func() {
	old := DefaultHandler
	SetHandler(h)
	return func() { SetHandler(old) }
}

type testHandler struct {
	onError      func(*HoistError)
	onPanic      func(*PanicError)
	onBuildError func(*BuildError)
}

func (h *testHandler) HandleError(err *HoistError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *testHandler) HandleBuildError(err *BuildError) {
	if h.onBuildError != nil {
		h.onBuildError(err)
	}
}
