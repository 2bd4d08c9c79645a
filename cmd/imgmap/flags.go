package main

import (
	"fmt"
	"strconv"
	"strings"
)

// rectList is a repeatable -rect flag holding native-space x1,y1,x2,y2 tuples.
type rectList [][4]int

func (l *rectList) String() string {
	parts := make([]string, 0, len(*l))
	for _, r := range *l {
		parts = append(parts, fmt.Sprintf("%d,%d,%d,%d", r[0], r[1], r[2], r[3]))
	}
	return strings.Join(parts, " ")
}

func (l *rectList) Set(value string) error {
	nums, err := splitInts(value, 4)
	if err != nil {
		return fmt.Errorf("rect must be x1,y1,x2,y2: %w", err)
	}
	*l = append(*l, [4]int{nums[0], nums[1], nums[2], nums[3]})
	return nil
}

// circleList is a repeatable -circle flag holding native-space cx,cy,r tuples.
type circleList [][3]int

func (l *circleList) String() string {
	parts := make([]string, 0, len(*l))
	for _, c := range *l {
		parts = append(parts, fmt.Sprintf("%d,%d,%d", c[0], c[1], c[2]))
	}
	return strings.Join(parts, " ")
}

func (l *circleList) Set(value string) error {
	nums, err := splitInts(value, 3)
	if err != nil {
		return fmt.Errorf("circle must be cx,cy,r: %w", err)
	}
	*l = append(*l, [3]int{nums[0], nums[1], nums[2]})
	return nil
}

func splitInts(value string, want int) ([]int, error) {
	fields := strings.Split(value, ",")
	if len(fields) != want {
		return nil, fmt.Errorf("expected %d comma-separated integers, got %d", want, len(fields))
	}
	nums := make([]int, want)
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", f, err)
		}
		nums[i] = n
	}
	return nums, nil
}
