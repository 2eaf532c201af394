package analysis

// rule maps a keyword set to an issue description, suggested actions and a
// base confidence. The table order is part of the contract: findings are
// emitted in this order.
type rule struct {
	category   string
	keywords   []string
	issue      string
	actions    []string
	confidence float64
}

var ruleTable = []rule{
	{
		category: CategoryProcess,
		keywords: []string{"notifica", "termine", "calendarizzazione"},
		issue:    "Notifica arrivata oltre i termini o notificata in ritardo",
		actions: []string{
			"Verifica la data di ricezione ufficiale della notifica",
			"Prepara PEC contenente richiesta di annullamento per violazione del termine",
		},
		confidence: 0.82,
	},
	{
		category: CategorySubstance,
		keywords: []string{"importo", "sanzione", "totale"},
		issue:    "Importo elevato senza dettaglio sul calcolo",
		actions: []string{
			"Richiedi il dettaglio del calcolo dell’importo",
			"Controlla se ci sono sconti o riduzioni automatiche dimenticate",
		},
		confidence: 0.66,
	},
	{
		category: CategorySubstance,
		keywords: []string{"saldo", "tributo", "recupero"},
		issue:    "Importo contestato in assenza di dettagli sul calcolo",
		actions: []string{
			"Chiedi istruzioni scritte sull’importo e sue componenti",
			"Richiedi un estratto conto firmato dalla prefettura",
		},
		confidence: 0.55,
	},
	{
		category: CategoryFormality,
		keywords: []string{"ricorso", "istruzioni", "procedura"},
		issue:    "Mancanza delle istruzioni su come proporre ricorso",
		actions: []string{
			"Richiedi copia completa del foglietto informativo allegato alla multa",
			"Prepara scheda da inviare tramite PEC entro 30 giorni",
		},
		confidence: 0.48,
	},
}
