// Package tui implements the interactive terminal dashboard for NetScene.
//
// The dashboard has two screens:
//
//   - Discovery: takes an ARP table snapshot and lists the devices found,
//     with a manual-entry fallback for hosts not in the table
//   - Dashboard: fetches and displays Pi-hole statistics for the selected
//     host, with on-demand password entry for authenticated instances
//
// Screens follow the bubbletea model/update/view pattern with a top-level
// AppModel coordinating transitions. All screens render through
// RenderApplicationContainer for a consistent full-screen layout.
package tui
