// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package gui

// Events are the things that happen in the gui as a result of user
// interaction, sent over a registered event channel.

// EventID identifies the type of event taking place.
type EventID int

// List of valid events.
const (
	// the user has asked for the emulation to end, either by closing the
	// window or with the quit key
	EventQuit EventID = iota

	// a key mapped to the machine's keypad has been pressed or released
	EventKeypad
)

// EventDataKeypad is the data that accompanies EventKeypad events. Key is
// the keypad digit (0x00 to 0x0f), not the key on the host keyboard.
type EventDataKeypad struct {
	Key  uint8
	Down bool
}

// Event is the structure that is passed over the event channel.
type Event struct {
	ID   EventID
	Data interface{}
}
