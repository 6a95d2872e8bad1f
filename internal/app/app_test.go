package app

import (
	"strings"
	"testing"
)

func TestInitialViewFromFlags(t *testing.T) {
	view, err := initialView("", "2026-08-21", "billing")
	if err != nil {
		t.Fatalf("initialView flags error: %v", err)
	}
	if view.Date != "2026-08-21" || view.Service != "billing" {
		t.Fatalf("initialView = %+v, want date 2026-08-21 service billing", view)
	}
}

func TestInitialViewLinkWins(t *testing.T) {
	view, err := initialView("gander://logs?date=2026-08-20&service=orders", "2026-01-01", "billing")
	if err != nil {
		t.Fatalf("initialView link error: %v", err)
	}
	if view.Date != "2026-08-20" || view.Service != "orders" {
		t.Fatalf("initialView = %+v, want the link's date and service", view)
	}
}

func TestInitialViewBadLink(t *testing.T) {
	_, err := initialView("gander://wrong?date=2026-08-20", "", "")
	if err == nil {
		t.Fatal("initialView accepted a link with the wrong host")
	}
	if !strings.Contains(err.Error(), "-link") {
		t.Fatalf("error = %v, want it to name the flag", err)
	}
}
