// Package reminders implements one-shot labeled reminders and the Pomodoro
// work/break timer.
//
// Reminders are held in memory and fired by per-entry timers; a fired or
// cancelled reminder is removed from the set. The Pomodoro timer is a small
// state machine alternating work and break phases until stopped. Both emit
// change callbacks so the event stream can fan out updates.
package reminders
