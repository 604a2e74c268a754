package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	courseModel "sikshyalaya_backend/internals/features/courses/model"
)

func TestBuildItems_SumsPrices(t *testing.T) {
	courses := []courseModel.CourseModel{
		{CourseID: uuid.New(), CourseTitle: "Go for Backend", CourseType: "video", CoursePrice: 1000},
		{CourseID: uuid.New(), CourseTitle: "Live System Design", CourseType: "live", CoursePrice: 2000},
	}

	items, total := BuildItems(courses)
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if total != 3000 {
		t.Errorf("Expected total 3000, got %.2f", total)
	}
	if items[0].Title != "Go for Backend" || items[0].Price != 1000 {
		t.Errorf("First item not captured from course: %+v", items[0])
	}
	if items[1].CourseType != "live" {
		t.Errorf("Expected course type carried onto item, got %q", items[1].CourseType)
	}
}

func TestAggregateTitle(t *testing.T) {
	single, _ := BuildItems([]courseModel.CourseModel{
		{CourseID: uuid.New(), CourseTitle: "Go for Backend", CoursePrice: 1500},
	})
	if got := AggregateTitle(single); got != "Go for Backend" {
		t.Errorf("Expected single course title, got %q", got)
	}

	cart, _ := BuildItems([]courseModel.CourseModel{
		{CourseID: uuid.New(), CourseTitle: "A", CoursePrice: 1000},
		{CourseID: uuid.New(), CourseTitle: "B", CoursePrice: 2000},
	})
	if got := AggregateTitle(cart); got != "2 Masterclasses" {
		t.Errorf("Expected \"2 Masterclasses\", got %q", got)
	}
}

func TestNewTransactionID(t *testing.T) {
	userID := uuid.MustParse("9f36415e-d931-4f36-a8c9-dca562a2a0a2")
	now := time.UnixMilli(1756300800000)

	got := NewTransactionID(now, userID)
	want := "1756300800000-9f36415e-d931-4f36-a8c9-dca562a2a0a2"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
