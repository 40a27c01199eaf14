// Package catalog holds the compiled-in policy offers and criteria
// metadata for the three product lines. The data is static: lookups
// never fail and the returned slices must be treated as read-only.
package catalog

import "quoting-engine/internal/model"

var policiesAuto = []model.PolicyOffer{
	{
		ID:            "axa-plus",
		Brand:         "AXA",
		Name:          "Auto Plus",
		Tagline:       "Equilibrio costo-cobertura",
		Pros:          []string{"Talleres certificados amplios", "App con seguimiento de siniestros"},
		Cons:          []string{"Deducible no negociable"},
		ConditionsURL: "https://example.com/axa/condiciones.pdf",
		Features: map[string]float64{
			"priceMonthly":       879,
			"liability":          4000,
			"collision":          300,
			"theft":              250,
			"roadside":           1,
			"glass":              1,
			"legalAid":           1,
			"deductible":         5,
			"claimDays":          4,
			"nps":                63,
			"workshopNetwork":    950,
			"telematicsDiscount": 10,
		},
	},
	{
		ID:            "gnp-elite",
		Brand:         "GNP",
		Name:          "Elite",
		Tagline:       "Cobertura alta y rapido siniestro",
		Pros:          []string{"Gestion agil de siniestros", "Coberturas altas en colision"},
		Cons:          []string{"Precio mensual elevado"},
		ConditionsURL: "https://example.com/gnp/condiciones.pdf",
		Features: map[string]float64{
			"priceMonthly":       1099,
			"liability":          6000,
			"collision":          500,
			"theft":              350,
			"roadside":           1,
			"glass":              1,
			"legalAid":           1,
			"deductible":         5,
			"claimDays":          3,
			"nps":                71,
			"workshopNetwork":    800,
			"telematicsDiscount": 5,
		},
	},
	{
		ID:            "qualitas-flex",
		Brand:         "Qualitas",
		Name:          "Flex",
		Tagline:       "Buen precio con red enorme",
		Pros:          []string{"Red muy amplia", "Precio competitivo"},
		Cons:          []string{"NPS medio"},
		ConditionsURL: "https://example.com/qualitas/condiciones.pdf",
		Features: map[string]float64{
			"priceMonthly":       799,
			"liability":          3500,
			"collision":          280,
			"theft":              260,
			"roadside":           1,
			"glass":              0,
			"legalAid":           1,
			"deductible":         7,
			"claimDays":          5,
			"nps":                58,
			"workshopNetwork":    1200,
			"telematicsDiscount": 0,
		},
	},
}

var criteriaAuto = []model.Criterion{
	{Key: "priceMonthly", Label: "Precio mensual", Help: "Prima estimada por mes (MXN).", Kind: model.KindCurrency},
	{Key: "liability", Label: "RC (terceros)", Help: "Limite de responsabilidad civil en miles de MXN.", Kind: model.KindNumber},
	{Key: "collision", Label: "Danos materiales", Help: "Suma asegurada para colision en miles de MXN.", Kind: model.KindNumber},
	{Key: "theft", Label: "Robo total", Help: "Suma asegurada para robo total en miles de MXN.", Kind: model.KindNumber},
	{Key: "roadside", Label: "Asistencia vial", Help: "Grua, paso de corriente, cambio de llanta.", Kind: model.KindBoolean},
	{Key: "glass", Label: "Cristales", Help: "Cobertura de rotura de cristales.", Kind: model.KindBoolean},
	{Key: "legalAid", Label: "Asistencia legal", Help: "Apoyo legal en siniestros.", Kind: model.KindBoolean},
	{Key: "deductible", Label: "Deducible", Help: "Porcentaje a cargo del asegurado.", Kind: model.KindPercentage},
	{Key: "claimDays", Label: "Tiempo de pago", Help: "Dias promedio para liquidacion.", Kind: model.KindDayCount},
	{Key: "nps", Label: "Satisfaccion (NPS)", Help: "Indice (0 a 100).", Kind: model.KindNumber},
	{Key: "workshopNetwork", Label: "Red de talleres", Help: "Cantidad de talleres.", Kind: model.KindNumber},
	{Key: "telematicsDiscount", Label: "Descuento telematico", Help: "% de ahorro por conduccion segura.", Kind: model.KindPercentage},
}

var policiesHealth = []model.PolicyOffer{
	{
		ID:      "axa-salud-total",
		Brand:   "AXA",
		Name:    "Salud Total",
		Tagline: "Red amplia y telemedicina",
		Features: map[string]float64{
			"priceMonthly":    1450,
			"deductibleMx":    20000,
			"copay":           10,
			"hospitalNetwork": 180,
			"maternityWait":   10,
			"preexistences":   0,
			"telemedicine":    1,
			"claimDays":       7,
		},
	},
	{
		ID:      "gnp-medica-elite",
		Brand:   "GNP",
		Name:    "Medica Elite",
		Tagline: "Coberturas altas y rapida autorizacion",
		Features: map[string]float64{
			"priceMonthly":    1890,
			"deductibleMx":    15000,
			"copay":           10,
			"hospitalNetwork": 150,
			"maternityWait":   12,
			"preexistences":   0,
			"telemedicine":    1,
			"claimDays":       6,
		},
	},
	{
		ID:      "sura-cuidado-plus",
		Brand:   "SURA",
		Name:    "Cuidado Plus",
		Tagline: "Precio competitivo y red solida",
		Features: map[string]float64{
			"priceMonthly":    1190,
			"deductibleMx":    25000,
			"copay":           15,
			"hospitalNetwork": 120,
			"maternityWait":   12,
			"preexistences":   0,
			"telemedicine":    1,
			"claimDays":       9,
		},
	},
}

var criteriaHealth = []model.Criterion{
	{Key: "priceMonthly", Label: "Precio mensual", Help: "Prima estimada por mes (MXN).", Kind: model.KindCurrency},
	{Key: "deductibleMx", Label: "Deducible", Help: "Deducible en MXN.", Kind: model.KindCurrency},
	{Key: "copay", Label: "Coaseguro", Help: "% del gasto cubierto por el asegurado.", Kind: model.KindPercentage},
	{Key: "hospitalNetwork", Label: "Red hospitalaria", Help: "Numero de hospitales en la red.", Kind: model.KindNumber},
	{Key: "maternityWait", Label: "Carencia maternidad", Help: "Meses de espera para maternidad.", Kind: model.KindDayCount},
	{Key: "preexistences", Label: "Cubre preexistencias", Help: "Cobertura para preexistencias.", Kind: model.KindBoolean},
	{Key: "telemedicine", Label: "Telemedicina", Help: "Consultas por videollamada incluidas.", Kind: model.KindBoolean},
	{Key: "claimDays", Label: "Tiempo de reembolso", Help: "Dias promedio para reembolso.", Kind: model.KindDayCount},
}

var policiesLife = []model.PolicyOffer{
	{
		ID:      "axa-vida-flex",
		Brand:   "AXA",
		Name:    "Vida Flex",
		Tagline: "Term life con riders",
		Features: map[string]float64{
			"priceMonthly":    520,
			"sumAssuredM":     1.5,
			"termYears":       20,
			"accidentalDeath": 1,
			"criticalIllness": 1,
			"cashValue":       0,
			"issueAgeMax":     65,
			"claimDays":       8,
		},
	},
	{
		ID:      "gnp-vida-tranquila",
		Brand:   "GNP",
		Name:    "Vida Tranquila",
		Tagline: "Proteccion y ahorro",
		Features: map[string]float64{
			"priceMonthly":    780,
			"sumAssuredM":     2.0,
			"termYears":       25,
			"accidentalDeath": 1,
			"criticalIllness": 0,
			"cashValue":       1,
			"issueAgeMax":     65,
			"claimDays":       7,
		},
	},
	{
		ID:      "sura-vida-simple",
		Brand:   "SURA",
		Name:    "Vida Simple",
		Tagline: "Termino puro, precio accesible",
		Features: map[string]float64{
			"priceMonthly":    430,
			"sumAssuredM":     1.0,
			"termYears":       15,
			"accidentalDeath": 0,
			"criticalIllness": 0,
			"cashValue":       0,
			"issueAgeMax":     60,
			"claimDays":       10,
		},
	},
}

var criteriaLife = []model.Criterion{
	{Key: "priceMonthly", Label: "Precio mensual", Help: "Prima estimada por mes (MXN).", Kind: model.KindCurrency},
	{Key: "sumAssuredM", Label: "Suma asegurada", Help: "Millones de MXN a indemnizar.", Kind: model.KindNumber},
	{Key: "termYears", Label: "Plazo", Help: "Duracion de la poliza en anos.", Kind: model.KindNumber},
	{Key: "accidentalDeath", Label: "Muerte accidental (rider)", Help: "Cobertura adicional por muerte accidental.", Kind: model.KindBoolean},
	{Key: "criticalIllness", Label: "Enfermedades graves", Help: "Rider de enfermedades graves.", Kind: model.KindBoolean},
	{Key: "cashValue", Label: "Valor en efectivo", Help: "Genera valor en efectivo.", Kind: model.KindBoolean},
	{Key: "issueAgeMax", Label: "Edad max. contratacion", Help: "Edad maxima para contratar.", Kind: model.KindNumber},
	{Key: "claimDays", Label: "Tiempo de pago", Help: "Dias promedio para liquidacion.", Kind: model.KindDayCount},
}

var checklistAuto = []string{
	"Identificación oficial (INE/Pasaporte)",
	"Licencia de conducir vigente",
	"Comprobante de domicilio (< 3 meses)",
	"Factura o tenencia (si aplica)",
	"Fotos del vehículo (frente, laterales, VIN)",
}

var checklistHealth = []string{
	"Identificacion oficial",
	"Cuestionario medico",
	"Comprobante de domicilio",
	"Estado de cuenta para Domiciliación",
}

var checklistLife = []string{
	"Identificacion oficial",
	"Cuestionario de salud",
	"Comprobante de domicilio",
	"Acta de nacimiento (si aplica)",
}

// PoliciesFor returns the ordered catalog for a line. Unknown lines
// yield nil.
func PoliciesFor(line model.ProductLine) []model.PolicyOffer {
	switch line {
	case model.LineAuto:
		return policiesAuto
	case model.LineHealth:
		return policiesHealth
	case model.LineLife:
		return policiesLife
	}
	return nil
}

// CriteriaFor returns the ordered criteria metadata for a line.
func CriteriaFor(line model.ProductLine) []model.Criterion {
	switch line {
	case model.LineAuto:
		return criteriaAuto
	case model.LineHealth:
		return criteriaHealth
	case model.LineLife:
		return criteriaLife
	}
	return nil
}

// Find returns the offer with the given id within a line's catalog.
func Find(line model.ProductLine, id string) (model.PolicyOffer, bool) {
	for _, p := range PoliciesFor(line) {
		if p.ID == id {
			return p, true
		}
	}
	return model.PolicyOffer{}, false
}

// DefaultChecklist returns the default required-document labels for a line.
func DefaultChecklist(line model.ProductLine) []string {
	switch line {
	case model.LineAuto:
		return checklistAuto
	case model.LineHealth:
		return checklistHealth
	case model.LineLife:
		return checklistLife
	}
	return nil
}
