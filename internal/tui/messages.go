// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// Operator-facing texts of the troubleshooting shell.
const (
	promptToken       = "Enter your Webex API token: "
	promptOption      = "Enter the option number: "
	promptRoomTitle   = "Enter the title for the new room: "
	promptRoomChoice  = "Choose a room (enter the corresponding number): "
	promptMessageText = "Enter the message to send to the room: "

	headingMenu        = "Main Menu:"
	headingUser        = "User Information:"
	headingRooms       = "List of Rooms:"
	headingRoomCreated = "Room created successfully:"

	msgConnectionOK      = "Connection successful! Acknowledgment: Webex server is reachable."
	msgConnectionFailed  = "Connection failed. Please check your token."
	msgUserFailed        = "Unable to retrieve user information. Please check your token."
	msgRoomsFailed       = "Failed to retrieve the list of rooms. Please check your token."
	msgNoRooms           = "No rooms found."
	msgNoRoomsToMessage  = "No rooms available to send a message to."
	msgCreateRoomFailed  = "Failed to create a new room. Please check your token."
	msgInvalidRoomChoice = "Invalid room choice. Please choose a valid room."
	msgMessageSent       = "Message sent successfully!"
	msgMessageFailed     = "Failed to send the message. Please check your token and try again."
	msgEmptyToken        = "A token is required."
	msgInvalidOption     = "Invalid option. Please choose a valid option."
	msgExit              = "Exiting the Webex Troubleshooting Tool"
)

// menuItems are rendered as "<index>. <item>"; the index is the option number.
var menuItems = []string{
	"Test connection with Webex server",
	"Display user information",
	"Display list of rooms",
	"Create a room",
	"Send a message to a room",
	"Exit",
}
