package routes

const (
	// Meta
	Root     = "/"
	Health   = "/health"
	HealthDB = "/health/db"
	Version  = "/version"

	APIPrefix = "/api/v1"

	// Property endpoints
	Property     = APIPrefix + "/property"
	PropertyByID = Property + "/{id:[0-9]+}"

	// Concept endpoints
	Concept     = APIPrefix + "/concept"
	ConceptByID = Concept + "/{id:[0-9]+}"

	// Contract endpoints
	Contract         = APIPrefix + "/contract"
	ContractByID     = Contract + "/{id:[0-9]+}"
	ContractEndingIn = Contract + "/ending-in/{months:-?[0-9]+}"

	// Properties-concepts endpoints
	PropertiesConcepts       = APIPrefix + "/properties-concepts"
	PropertiesConceptsByID   = PropertiesConcepts + "/{id:[0-9]+}"
	PropertiesConceptsCombos = PropertiesConcepts + "/get-combos"

	// Transaction endpoints
	Transaction        = APIPrefix + "/transaction"
	TransactionByID    = Transaction + "/{id:[0-9]+}"
	TransactionBalance = Transaction + "/balance"
)
