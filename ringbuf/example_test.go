// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package ringbuf_test

import (
	"fmt"

	"github.com/momentics/hioload-ring/ringbuf"
)

func ExampleBuffer_Push() {
	b := ringbuf.New[string](2)
	b.Push("alpha")
	b.Push("beta")
	evicted, ok := b.Push("gamma")
	fmt.Println(evicted, ok)
	// Output: alpha true
}

func ExampleFreeze() {
	b := ringbuf.New[int](3)
	for i := 1; i <= 5; i++ {
		b.Push(i)
	}

	v := ringbuf.Freeze(b)
	for i := 0; i < v.Len(); i++ {
		val, _ := v.At(i)
		fmt.Println(*val)
	}

	b = v.Thaw()
	fmt.Println(b.Len())
	// Output:
	// 3
	// 4
	// 5
	// 3
}

func ExamplePeekLast() {
	b := ringbuf.New[float64](4)
	b.Push(1.5)
	b.Push(2.5)
	doubled, ok := ringbuf.PeekLast(b, func(v float64) float64 { return v * 2 })
	fmt.Println(doubled, ok)
	// Output: 5 true
}
