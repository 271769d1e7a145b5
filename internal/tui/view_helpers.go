// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/webex-troubleshooter/models"
)

func renderMenu(st styles) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(st.title.Render(headingMenu))
	b.WriteString("\n")
	for i, item := range menuItems {
		fmt.Fprintf(&b, "%d. %s\n", i, item)
	}

	return b.String()
}

func renderProfile(st styles, person models.Person) string {
	var b strings.Builder

	b.WriteString(st.title.Render(headingUser))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Display Name: %s\n", person.DisplayName)
	fmt.Fprintf(&b, "Nickname: %s\n", person.NickName)
	fmt.Fprintf(&b, "Emails: %s\n", strings.Join(person.Emails, ", "))

	return b.String()
}

func renderRoomDetails(room models.Room) string {
	return fmt.Sprintf("Room ID: %s\nRoom Title: %s\nDate Created: %s\nLast Activity: %s\n",
		room.ID, room.Title, room.Created, room.LastActivity)
}

func renderRoomList(st styles, rooms []models.Room) string {
	var b strings.Builder

	b.WriteString(st.title.Render(headingRooms))
	b.WriteString("\n")
	if len(rooms) == 0 {
		b.WriteString(msgNoRooms)
		b.WriteString("\n")
		return b.String()
	}

	for i, room := range rooms {
		fmt.Fprintf(&b, "Room %d:\n", i+1)
		b.WriteString(renderRoomDetails(room))
	}

	return b.String()
}

// renderRoomChoices is the compact numbered list used before sending a message.
func renderRoomChoices(st styles, rooms []models.Room) string {
	var b strings.Builder

	b.WriteString(st.title.Render(headingRooms))
	b.WriteString("\n")
	for i, room := range rooms {
		fmt.Fprintf(&b, "%d. %s\n", i+1, room.Title)
	}

	return b.String()
}

func renderCreatedRoom(st styles, room models.Room) string {
	return st.title.Render(headingRoomCreated) + "\n" + renderRoomDetails(room)
}
