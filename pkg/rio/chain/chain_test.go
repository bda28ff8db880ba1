package chain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/rio/pkg/rio"
)

func TestStartAndResult(t *testing.T) {
	t.Parallel()
	out := Start(rio.Success(5)).Result()
	if !out.IsSuccess() || out.Result() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	out := FromValue(7).Result()
	if !out.IsSuccess() || out.Result() != 7 {
		t.Fatalf("expected success with 7, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	out := Then(FromValue("21"), func(s string) rio.Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return rio.Fail[int](err)
		}
		return rio.Success(n * 2)
	}).Result()

	if !out.IsSuccess() || out.Result() != 42 {
		t.Fatalf("expected success with 42, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	called := false
	out := Then(Start(rio.Fail[int](err)), func(v int) rio.Result[int] {
		called = true
		return rio.Success(v + 1)
	}).Result()

	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if called {
		t.Fatalf("onSuccess should not be called when initial result is failure")
	}
}

func TestThen_ShortCircuitOnEmpty(t *testing.T) {
	t.Parallel()
	called := false
	out := Then(Start(rio.Empty[int]()), func(v int) rio.Result[int] {
		called = true
		return rio.Success(v + 1)
	}).Result()

	if !out.IsEmpty() || called {
		t.Fatalf("expected untouched empty, got: empty=%v, called=%v", out.IsEmpty(), called)
	}
}

func TestThenTry_ErrorPropagation(t *testing.T) {
	t.Parallel()
	out := ThenTry(FromValue(10), func(v int) (int, error) {
		return 0, errors.New("try-error")
	}).Result()

	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestMap_Success(t *testing.T) {
	t.Parallel()
	out := Map(FromValue(5), func(v int) string { return strconv.Itoa(v + 3) }).Result()
	if !out.IsSuccess() || out.Result() != "8" {
		t.Fatalf("expected success with \"8\", got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestEnsure_RunsOnSuccessOnly(t *testing.T) {
	t.Parallel()
	seen := 0
	FromValue(3).Ensure(func(v int) { seen = v })
	if seen != 3 {
		t.Fatalf("expected side effect to observe 3, got: %d", seen)
	}

	Start(rio.Fail[int](errors.New("x"))).Ensure(func(v int) { seen = -1 })
	if seen == -1 {
		t.Fatalf("side effect must not run on failure")
	}
}

func TestMapFailure_Annotates(t *testing.T) {
	t.Parallel()
	cause := errors.New("root")
	out := Start(rio.Fail[int](cause)).MapFailure("step two").Result()
	if !out.IsFailure() || !errors.Is(out.Err(), cause) {
		t.Fatalf("expected annotated failure keeping cause, got: %v", out.Err())
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()
	out := FromValue(4).Filter(func(v int) bool { return v > 10 }).Result()
	if !out.IsFailure() {
		t.Fatalf("expected failure for filtered-out value, got: %v", out)
	}
}

func TestFinally_ThreeWay(t *testing.T) {
	t.Parallel()
	got := Finally(FromValue(2),
		func(v int) string { return "val:" + strconv.Itoa(v) },
		func(err error) string { return "err" },
		func() string { return "none" })
	if got != "val:2" {
		t.Fatalf("expected 'val:2', got: %s", got)
	}

	got = Finally(Start(rio.Empty[int]()),
		func(v int) string { return "val" },
		func(err error) string { return "err" },
		func() string { return "none" })
	if got != "none" {
		t.Fatalf("expected 'none', got: %s", got)
	}
}
