// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package engine simulates the assistant backend for local-only mode: it
// picks a canned reply for the classified category and computes an
// artificial typing delay so the UI behaves like a real round trip.
package engine

import (
	"math/rand/v2"
	"time"

	"github.com/iuristatech/iurista-tui/internal/classify"
)

// =============================================================================
// REPLY TYPE
// =============================================================================

// Reply is a simulated assistant turn.
type Reply struct {
	Category         classify.Category
	Status           classify.Status
	Text             string
	SuggestedActions []string

	// Delay is how long the caller should wait before surfacing the reply,
	// simulating typing time.
	Delay time.Duration
}

// =============================================================================
// TIMING
// =============================================================================

const (
	baseDelay    = 800 * time.Millisecond
	perCharDelay = 8 * time.Millisecond
	maxDelay     = 3 * time.Second
)

// TypingDelay computes the simulated typing time for a reply text:
// 800ms plus 8ms per character, capped at 3s.
func TypingDelay(text string) time.Duration {
	d := baseDelay + time.Duration(len(text))*perCharDelay
	if d > maxDelay {
		return maxDelay
	}
	return d
}

// =============================================================================
// RESPONSE GENERATION
// =============================================================================

// Respond classifies the user message and returns the simulated assistant
// turn. Pure except for the random pick among multiple candidate texts.
func Respond(userMessage string) Reply {
	category := classify.Message(userMessage)
	status := classify.DetectStatus(userMessage)

	texts, ok := responses[category]
	if !ok || len(texts) == 0 {
		texts = responses[classify.CategoryGeneral]
	}
	text := texts[rand.IntN(len(texts))]

	return Reply{
		Category:         category,
		Status:           status,
		Text:             text,
		SuggestedActions: suggestedActions[category],
		Delay:            TypingDelay(text),
	}
}

// =============================================================================
// SUGGESTED ACTIONS
// =============================================================================

// suggestedActions are the one-click follow-ups offered under a simulated
// reply, mirroring the closing question of each canned text.
var suggestedActions = map[classify.Category][]string{
	classify.CategoryLaboral: {
		"Generar borrador de contrato laboral",
		"Comparar tipos de contrato",
	},
	classify.CategoryInmobiliario: {
		"Revisar cláusulas de mi contrato de arrendamiento",
		"Lista de debida diligencia del inmueble",
	},
	classify.CategoryMigratorio: {
		"Preparar documentos de radicación",
		"Requisitos de la Visa V para nómadas digitales",
	},
	classify.CategoryGeneral: {
		"Consulta de Derecho Laboral",
		"Consulta de Régimen Inmobiliario",
		"Consulta de Derecho Migratorio",
	},
	classify.CategoryRiskDetected: {
		"Agendar una Consulta de Fondo",
	},
}

// =============================================================================
// CANNED RESPONSES
// =============================================================================

// responses holds the simulated replies per specialty area.
var responses = map[classify.Category][]string{
	classify.CategoryLaboral: {
		`Entiendo su consulta sobre contratación laboral. Permítame orientarle.

En Colombia, la formalización de contratos de trabajo se rige por el **Código Sustantivo del Trabajo (CST)**. Para su Pyme, es fundamental distinguir entre:

| Tipo de Contrato | Duración | Características |
|---|---|---|
| Término Fijo | Hasta 3 años | Renovable, requiere preaviso de 30 días |
| Término Indefinido | Sin límite | Mayor estabilidad, indemnización por despido sin justa causa |
| Obra o Labor | Según la obra | Finaliza al completar la labor contratada |
| Prestación de Servicios | Variable | No genera relación laboral directa |

**Recomendación para Pymes:** El contrato a término fijo inferior a un año es ideal para evaluar personal, pero recuerde que según el **Art. 46 del CST**, si se renueva más de 3 veces, la cuarta debe ser por 1 año mínimo.

¿Desea que genere un borrador de contrato laboral adaptado a las necesidades de su empresa?`,
	},

	classify.CategoryInmobiliario: {
		`Gracias por su consulta sobre arrendamiento comercial. Es un tema crucial para la operación de cualquier Pyme.

El arrendamiento de locales comerciales en Colombia se rige por la **Ley 820 de 2003** y los artículos pertinentes del **Código de Comercio**.

Puntos críticos que debe verificar en su contrato:

**1. Derecho de renovación automática (Art. 518 C. Comercio):** Si ha ocupado el local por más de 2 años, tiene derecho preferente a la renovación.

**2. Incremento del canon:** No puede exceder el IPC certificado por el DANE para el año inmediatamente anterior.

**3. Debida diligencia del inmueble:** Antes de firmar, solicite:
- Certificado de Tradición y Libertad (no mayor a 30 días)
- Paz y Salvo de administración
- Certificado de uso del suelo compatible con su actividad

**Alerta preventiva:** Firmar sin debida diligencia puede exponerlo a embargos ocultos o limitaciones de uso que afecten su operación.

¿Desea que revise las cláusulas específicas de su contrato de arrendamiento?`,
	},

	classify.CategoryMigratorio: {
		`Excelente consulta. La gestión migratoria para empresas en Colombia ha tenido cambios significativos.

Según la **Resolución 5477 de 2022** del Ministerio de Relaciones Exteriores, los tipos de visa relevantes para su empresa son:

| Visa | Uso | Vigencia |
|---|---|---|
| **Visa V** (Visitante) | Nómadas digitales, turismo de negocios | Hasta 2 años |
| **Visa M** (Migrante) | Trabajadores contratados por empresa colombiana | Hasta 3 años |
| **Visa R** (Residente) | Extranjeros con 5+ años de visa M | Indefinida |

**Para nómadas digitales:** Desde 2022, Colombia ofrece la **Visa V - Nómada Digital**, que requiere:
- Ingresos mensuales mínimos de 3 salarios mínimos colombianos
- Seguro médico vigente en Colombia
- Carta de la empresa o prueba de actividad remota

**Obligación del empleador:** Si contrata directamente a un extranjero, debe reportar el vínculo ante **Migración Colombia** dentro de los 15 días siguientes.

¿Necesita que prepare los documentos de radicación para un caso específico?`,
	},

	classify.CategoryGeneral: {
		`Gracias por su consulta. He analizado su situación dentro del marco normativo colombiano aplicable.

Para brindarle una orientación precisa, necesito entender mejor su caso:

**1.** ¿Se trata de una persona natural o jurídica (empresa)?
**2.** ¿En qué ciudad o departamento se encuentra?
**3.** ¿Existe algún plazo o urgencia que debamos considerar?

Estas preguntas me permiten personalizar mi análisis según las normas territoriales y los plazos legales aplicables.

Recuerde que mi asesoría cubre tres áreas especializadas:
- ⚖️ **Derecho Laboral y Seguridad Social**
- 🏛️ **Régimen Inmobiliario**
- 🌎 **Derecho Migratorio**

Si su consulta se encuentra fuera de estas áreas, le recomiendo agendar una **Consulta de Fondo** directamente con el despacho para recibir orientación personalizada.

¿En cuál de estas áreas se enmarca su necesidad?`,
	},

	classify.CategoryOutOfScope: {
		`Agradezco su confianza al consultarme. Sin embargo, debo ser transparente con usted.

Su consulta se enmarca en un área que **excede el alcance de este despacho**. Nuestro enfoque se centra exclusivamente en:

- ⚖️ Derecho Laboral y Seguridad Social
- 🏛️ Régimen Inmobiliario
- 🌎 Derecho Migratorio

Para temas de derecho penal, civil general, familia o constitucional, le recomendamos acudir a un profesional especializado en esa materia.

Si tiene alguna consulta dentro de nuestras áreas de especialidad, estoy a su disposición. ¿Puedo ayudarle con algo más?`,
	},

	classify.CategoryRiskDetected: {
		`⚠️ **Alerta de Riesgo Detectada**

He identificado elementos en su consulta que podrían implicar riesgos económicos o sanciones para su empresa.

Antes de proceder, es importante que considere lo siguiente:

**Acciones preventivas inmediatas:**
1. No tome decisiones laborales unilaterales sin documentación adecuada
2. Conserve toda la evidencia documental relacionada
3. Revise los plazos de prescripción aplicables a su caso

Dado el nivel de riesgo identificado, le recomiendo encarecidamente agendar una **Consulta de Fondo** con el despacho para un análisis personalizado de su situación.

Para formalizar este requerimiento en el sistema, necesito validar su perfil. ¿Podría indicarme su nombre completo y correo electrónico?`,
	},
}
