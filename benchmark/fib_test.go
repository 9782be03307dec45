package benchmark

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

func TestFib(t *testing.T) {
	tests := []struct {
		x    int
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{10, 55},
		{20, 6765},
		{30, 832040},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("fib(%d)", tt.x), func(t *testing.T) {
			if got := Fib(tt.x); got != tt.want {
				t.Errorf("Fib(%d) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
}

func TestFibRecurrence(t *testing.T) {
	for x := 2; x <= 25; x++ {
		if Fib(x) != Fib(x-1)+Fib(x-2) {
			t.Fatalf("Fib(%d) != Fib(%d) + Fib(%d)", x, x-1, x-2)
		}
	}
}

// 负数命中 x <= 1 分支，原样返回
func TestFibNegativeInput(t *testing.T) {
	for _, x := range []int{-1, -5, -30} {
		if got := Fib(x); got != x {
			t.Errorf("Fib(%d) = %d, want %d", x, got, x)
		}
	}
}

func TestAlgorithmsAgree(t *testing.T) {
	for _, name := range []string{Memo, DP, Iterative} {
		fn, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		t.Run(name, func(t *testing.T) {
			for x := 0; x <= 40; x++ {
				want := FibSimple(x)
				if got := fn(x); got != want {
					t.Fatalf("%s(%d) = %d, want %d", name, x, got, want)
				}
			}
			for x := 0; x <= 25; x++ {
				if got, want := fn(x), Fib(x); got != want {
					t.Fatalf("%s(%d) = %d, naive gives %d", name, x, got, want)
				}
			}
		})
	}
}

// MaxInput 是最后一个不溢出的下标，所有算法在此处仍然一致且为正
func TestMaxInput(t *testing.T) {
	const want int64 = 7540113804746346429
	for _, name := range []string{Memo, DP, Iterative} {
		fn, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if got := int64(fn(MaxInput)); got != want {
			t.Errorf("%s(%d) = %d, want %d", name, MaxInput, got, want)
		}
	}
}

func TestLookup(t *testing.T) {
	fn, err := Lookup(Naive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fn(10); got != 55 {
		t.Errorf("naive(10) = %d, want 55", got)
	}

	_, err = Lookup("bogus")
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Lookup(bogus) error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestNames(t *testing.T) {
	want := []string{DP, Iterative, Memo, Naive}
	if got := Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func ExampleFib() {
	fmt.Println(Fib(30))
	// Output: 832040
}
