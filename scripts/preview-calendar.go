package main

import (
	"fmt"
	"os"

	"github.com/campusconnect/campus-events/internal/calendar"
	"github.com/campusconnect/campus-events/internal/event"
)

func main() {
	// Create a sample event
	evt := &event.ExternalEvent{
		ID:          1,
		Title:       "Christmas Concert",
		Date:        "2025-12-02",
		Time:        "7:30 pm",
		Location:    "Abbey Basilica",
		Description: "Annual Christmas concert",
		Source:      event.SourceAcademic,
		URL:         "https://belmontabbeycollege.edu/academics/calendar/",
	}

	// Generate the .ics feed
	icsContent := calendar.Feed([]*event.ExternalEvent{evt})

	// Write to file (owner read/write only)
	filename := "preview-campus-event.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by importing it into your calendar app.")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
