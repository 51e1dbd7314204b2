package model

// Parish is one of Jamaica's 14 administrative regions, the geographic
// unit alerts are scoped to.
type Parish string

const (
	ParishKingston     Parish = "KINGSTON"
	ParishStAndrew     Parish = "ST_ANDREW"
	ParishStThomas     Parish = "ST_THOMAS"
	ParishPortland     Parish = "PORTLAND"
	ParishStMary       Parish = "ST_MARY"
	ParishStAnn        Parish = "ST_ANN"
	ParishTrelawny     Parish = "TRELAWNY"
	ParishStJames      Parish = "ST_JAMES"
	ParishHanover      Parish = "HANOVER"
	ParishWestmoreland Parish = "WESTMORELAND"
	ParishStElizabeth  Parish = "ST_ELIZABETH"
	ParishManchester   Parish = "MANCHESTER"
	ParishClarendon    Parish = "CLARENDON"
	ParishStCatherine  Parish = "ST_CATHERINE"
)

// Parishes lists every recognized parish code.
var Parishes = []Parish{
	ParishKingston, ParishStAndrew, ParishStThomas, ParishPortland,
	ParishStMary, ParishStAnn, ParishTrelawny, ParishStJames,
	ParishHanover, ParishWestmoreland, ParishStElizabeth,
	ParishManchester, ParishClarendon, ParishStCatherine,
}

var parishSet = func() map[Parish]struct{} {
	m := make(map[Parish]struct{}, len(Parishes))
	for _, p := range Parishes {
		m[p] = struct{}{}
	}
	return m
}()

// ParseParish parses a parish code.
func ParseParish(s string) (Parish, bool) {
	p := Parish(s)
	_, ok := parishSet[p]
	return p, ok
}
