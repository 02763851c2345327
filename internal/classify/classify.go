// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package classify

import (
	"strings"
)

// =============================================================================
// CATEGORY AND STATUS TYPES
// =============================================================================

// Category is the topic bucket used to select a canned reply.
type Category string

const (
	CategoryLaboral      Category = "laboral"
	CategoryInmobiliario Category = "inmobiliario"
	CategoryMigratorio   Category = "migratorio"
	CategoryGeneral      Category = "general"
	CategoryOutOfScope   Category = "outOfScope"
	CategoryRiskDetected Category = "riskDetected"
)

// Status is the tag driving the progress capsule while a request is in
// flight.
type Status string

const (
	StatusAnalyzing Status = "analyzing"
	StatusDocument  Status = "document"
	StatusRisk      Status = "risk"
)

// =============================================================================
// KEYWORD TABLES
// =============================================================================

// riskKeywords trigger both CategoryRiskDetected and StatusRisk.
var riskKeywords = []string{
	"demanda", "sanción", "sancion", "multa", "embargo", "tutela",
	"incumplimiento", "penalidad", "litigio", "ilegal", "infracción",
	"fraude", "prescripción", "caducidad", "ugpp", "dian",
}

// documentKeywords trigger StatusDocument.
var documentKeywords = []string{
	"contrato", "documento", "borrador", "certificado", "poder",
	"escritura", "acta", "reglamento", "formulario", "solicitud",
	"formato", "plantilla", "modelo", "cláusula", "clausula",
}

var outOfScopeKeywords = []string{
	"penal", "criminal", "divorcio", "custodia", "herencia",
	"sucesión", "alimentos", "violencia", "homicidio", "robo",
	"estafa",
}

// The laboral list matches employment-specific phrasings only; a bare
// "contrato" stem would shadow the inmobiliario rules below (a lease is
// also a contract), so contract terms here carry their labor qualifier.
var laboralKeywords = []string{
	"contrato de trabajo", "contrato laboral", "contratación",
	"contratacion", "trabajo", "laboral", "nómina", "nomina", "despido",
	"empleado", "trabajador", "salario", "prestacion", "pila",
	"ugpp", "seguridad social", "liquidación", "liquidacion",
	"vacaciones", "prima", "cesantías", "cesantias", "eps", "arl",
}

var inmobiliarioKeywords = []string{
	"arrendamiento", "arriendo", "local", "inmueble", "propiedad",
	"escritura", "título", "titulo", "horizontal", "predio",
	"canon", "inquilino", "arrendatario", "arrendador",
}

var migratorioKeywords = []string{
	"visa", "migra", "extranjero", "nómada", "nomada", "digital",
	"cancillería", "cancilleria", "pasaporte", "permiso",
	"residencia", "nacionalidad",
}

// =============================================================================
// RULE TABLES
// =============================================================================

// rule pairs a keyword list with the label it yields. Rules are evaluated in
// order; the first list with any member contained in the input wins.
type rule[T any] struct {
	keywords []string
	label    T
}

// categoryRules is the ordered routing table. Out-of-scope and risk
// detection pre-empt topical routing even when topical keywords co-occur.
var categoryRules = []rule[Category]{
	{outOfScopeKeywords, CategoryOutOfScope},
	{riskKeywords, CategoryRiskDetected},
	{laboralKeywords, CategoryLaboral},
	{inmobiliarioKeywords, CategoryInmobiliario},
	{migratorioKeywords, CategoryMigratorio},
}

// statusRules is evaluated independently of categoryRules over the same
// input, so category and status may disagree.
var statusRules = []rule[Status]{
	{riskKeywords, StatusRisk},
	{documentKeywords, StatusDocument},
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Message maps an utterance to its category. Matching is case-insensitive
// substring containment; empty or unmatched input falls through to
// CategoryGeneral. Never fails.
func Message(text string) Category {
	lower := strings.ToLower(text)
	for _, r := range categoryRules {
		if containsAny(lower, r.keywords) {
			return r.label
		}
	}
	return CategoryGeneral
}

// DetectStatus maps an utterance to the progress-capsule tag. Independent of
// Message; defaults to StatusAnalyzing.
func DetectStatus(text string) Status {
	lower := strings.ToLower(text)
	for _, r := range statusRules {
		if containsAny(lower, r.keywords) {
			return r.label
		}
	}
	return StatusAnalyzing
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
