// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package profile implements the "Mi Perfil" page: account details,
// activity stats, recent consultations, and inline renaming.
package profile
