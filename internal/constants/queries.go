package constants

const (
	InsertFlight = `
	INSERT INTO flights (
		id, user_id, flight_date, flight_number,
		departure_iata, arrival_iata, airline_iata,
		status, duration_hours, remarks
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING created_at, updated_at
	`

	GetFlightByID = `
	SELECT * FROM flights WHERE id = $1
	`

	ListFlightsByUser = `
	SELECT * FROM flights
	WHERE user_id = $1
	ORDER BY flight_date DESC NULLS LAST, created_at DESC
	`

	ListAllFlights = `
	SELECT * FROM flights
	ORDER BY flight_date DESC NULLS LAST, created_at DESC
	`

	UpdateFlight = `
	UPDATE flights SET
		flight_date = $2,
		flight_number = $3,
		departure_iata = $4,
		arrival_iata = $5,
		airline_iata = $6,
		status = $7,
		duration_hours = $8,
		remarks = $9,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`

	DeleteFlight = `
	DELETE FROM flights WHERE id = $1
	`

	InsertAuditEvent = `
	INSERT INTO audit_events (
		id, actor_id, action, entity_type, entity_id, detail
	)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	ListAuditEvents = `
	SELECT * FROM audit_events
	ORDER BY created_at DESC
	LIMIT $1
	`
)
