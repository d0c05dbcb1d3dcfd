package catalog

import (
	"reflect"
	"testing"

	"github.com/kubekattle/fern/internal/leaf"
)

func TestTasksDeduplicatesAndSorts(t *testing.T) {
	leaves := []*leaf.Leaf{
		{Dir: "a", Tasks: leaf.TaskSet{"test": {"go test"}, "fmt": {"gofmt -w ."}}},
		{Dir: "b", Tasks: leaf.TaskSet{"test": {"cargo test"}}},
		{Dir: "c", Tasks: leaf.TaskSet{"test": {"npm test"}, "build": {"npm run build"}}},
	}
	got := Tasks(leaves)
	want := []string{"build", "fmt", "test"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTasksEmptyInput(t *testing.T) {
	if got := Tasks(nil); len(got) != 0 {
		t.Fatalf("expected no tasks, got %v", got)
	}
}
