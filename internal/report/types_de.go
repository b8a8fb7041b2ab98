package report

// German record, wire names per the printed German form.

type InjuriesDE struct {
	Occurred    bool   `json:"stattgefunden"`
	Description string `json:"beschreibung"`
}

type MaterialDamageDE struct {
	OtherThanVehicles bool   `json:"andere_als_fahrzeuge_a_und_b"`
	OtherObject       bool   `json:"an_anderen_gegenstaenden"`
	Description       string `json:"beschreibung"`
}

type WitnessDE struct {
	Name       string `json:"name"`
	FirstName  string `json:"vorname"`
	Address    string `json:"anschrift"`
	PostalCode string `json:"postleitzahl"`
	Country    string `json:"land"`
	Telephone  string `json:"telefon"`
	Email      string `json:"email"`
}

type AccidentDetailsDE struct {
	Date           string           `json:"datum"`
	Time           string           `json:"uhrzeit"`
	Locality       string           `json:"oertlichkeit"`
	Place          string           `json:"ort"`
	Country        string           `json:"land"`
	Injuries       InjuriesDE       `json:"verletzungen"`
	MaterialDamage MaterialDamageDE `json:"sachschaeden"`
	Witnesses      []WitnessDE      `json:"zeugen"`
}

type InsuredPolicyholderDE struct {
	Name             string `json:"name"`
	FirstName        string `json:"vorname"`
	Address          string `json:"anschrift"`
	PostalCode       string `json:"postleitzahl"`
	Country          string `json:"land"`
	TelephoneOrEmail string `json:"telefon_oder_email"`
}

type VehicleMotorDE struct {
	MakeType              string `json:"marke_typ"`
	RegistrationNumber    string `json:"amtliches_kennzeichen"`
	CountryOfRegistration string `json:"zulassungsland"`
}

type VehicleTrailerDE struct {
	RegistrationNumber    string `json:"amtliches_kennzeichen"`
	CountryOfRegistration string `json:"zulassungsland"`
}

type VehicleDetailDE struct {
	Motor   VehicleMotorDE   `json:"motor"`
	Trailer VehicleTrailerDE `json:"anhaenger"`
}

type InsuranceAgencyDE struct {
	Name             string `json:"name"`
	Address          string `json:"anschrift"`
	Country          string `json:"land"`
	TelephoneOrEmail string `json:"telefon_oder_email"`
}

type InsuranceDetailsDE struct {
	CompanyName           string            `json:"gesellschaftsname"`
	PolicyNumber          string            `json:"policennummer"`
	GreenCardNumber       string            `json:"gruene_karte_nummer"`
	ValidFrom             string            `json:"gueltig_ab"`
	ValidTo               string            `json:"gueltig_bis"`
	Agency                InsuranceAgencyDE `json:"agentur"`
	MaterialDamageCovered bool              `json:"sachschaeden_gedeckt"`
}

type DriverDE struct {
	Name                 string `json:"name"`
	FirstName            string `json:"vorname"`
	Address              string `json:"anschrift"`
	PostalCode           string `json:"postleitzahl"`
	Country              string `json:"land"`
	TelephoneOrEmail     string `json:"telefon_oder_email"`
	DateOfBirth          string `json:"geburtsdatum"`
	DrivingLicenceNumber string `json:"fuehrerscheinnummer"`
	Category             string `json:"kategorie"`
	ValidUntil           string `json:"gueltig_bis"`
}

type CircumstancesDE struct {
	ParkedStopped         bool `json:"geparkt_hielt_an"`
	LeavingParking        bool `json:"verliess_parkplatz_oeffnete_tuer"`
	EnteringParking       bool `json:"bog_in_parkplatz_ein"`
	EmergingCar           bool `json:"kam_aus_parkplatz_grundstueck_feldweg"`
	EnteringCar           bool `json:"bog_auf_parkplatz_grundstueck_feldweg_ein"`
	EnteringRoundabout    bool `json:"bog_in_kreisverkehr_ein"`
	CirculatingRoundabout bool `json:"fuhr_in_kreisverkehr"`
	StrikingRear          bool `json:"fuhr_auf_heck_eines_anderen_fahrzeugs_auf_gleiche_richtung_spur"`
	GoingSameDirection    bool `json:"fuhr_in_gleicher_richtung_anderer_fahrstreifen"`
	ChangingLanes         bool `json:"wechselte_fahrstreifen"`
	Overtaking            bool `json:"ueberholte"`
	TurningRight          bool `json:"bog_rechts_ab"`
	TurningLeft           bool `json:"bog_links_ab"`
	Reversing             bool `json:"fuhr_rueckwaerts"`
	EncroachingLane       bool `json:"drang_auf_fahrstreifen_fuer_gegenverkehr_ein"`
	ComingRight           bool `json:"kam_von_rechts_kreuzung"`
	HadNotObserved        bool `json:"hatte_vorfahrt_oder_rote_ampel_nicht_beachtet"`
	BoxesMarkedTotal      int  `json:"angekreuzte_felder_summe"`
}

func (c CircumstancesDE) countMarked() int {
	return countTrue(
		c.ParkedStopped, c.LeavingParking, c.EnteringParking, c.EmergingCar,
		c.EnteringCar, c.EnteringRoundabout, c.CirculatingRoundabout,
		c.StrikingRear, c.GoingSameDirection, c.ChangingLanes, c.Overtaking,
		c.TurningRight, c.TurningLeft, c.Reversing, c.EncroachingLane,
		c.ComingRight, c.HadNotObserved,
	)
}

type PartyDetailsDE struct {
	InsuredPolicyholder InsuredPolicyholderDE `json:"versicherungsnehmer"`
	Vehicle             VehicleDetailDE       `json:"fahrzeug"`
	Insurance           InsuranceDetailsDE    `json:"versicherung"`
	Driver              DriverDE              `json:"fahrer"`
	InitialImpactPoint  string                `json:"erster_aufprallpunkt"`
	VisibleDamage       string                `json:"sichtbare_schaeden"`
	Circumstances       CircumstancesDE       `json:"umstaende"`
	Remarks             string                `json:"bemerkungen"`
	SignedBy            string                `json:"unterschrieben_von"`
}

type VehiclesDE struct {
	A PartyDetailsDE `json:"A"`
	B PartyDetailsDE `json:"B"`
}

type ImpactSketchDE struct {
	Description string `json:"beschreibung"`
	Layout      string `json:"layout"`
	Arrows      string `json:"pfeile"`
	Positions   string `json:"positionen"`
	RoadLines   string `json:"fahrbahnmarkierungen"`
}

type FinalDE struct {
	LiabilityAdmission bool   `json:"haftungsanerkenntnis"`
	Note               string `json:"hinweis"`
}

type StatementDE struct {
	Sheet           string            `json:"blatt"`
	AccidentDetails AccidentDetailsDE `json:"unfalldetails"`
	Vehicles        VehiclesDE        `json:"fahrzeuge"`
	ImpactSketch    ImpactSketchDE    `json:"unfallskizze"`
	Final           FinalDE           `json:"abschluss"`
}

type ReportDE struct {
	AccidentStatement StatementDE `json:"unfallbericht"`
}

const (
	sketchDescriptionDE = "Skizze des Unfallhergangs zum Zeitpunkt des Zusammenstosses"
	finalNoteDE         = "Stellt kein Haftungsanerkenntnis dar, sondern eine Zusammenfassung von Identitäten und Fakten zur Beschleunigung der Schadenregulierung"
)

func NewReportDE() *ReportDE {
	r := &ReportDE{}
	r.AccidentStatement.AccidentDetails.Witnesses = []WitnessDE{}
	r.AccidentStatement.ImpactSketch.Description = sketchDescriptionDE
	r.AccidentStatement.Final.Note = finalNoteDE
	return r
}

func (r *ReportDE) finalize() {
	st := &r.AccidentStatement
	if st.AccidentDetails.Witnesses == nil {
		st.AccidentDetails.Witnesses = []WitnessDE{}
	}
	if st.ImpactSketch.Description == "" {
		st.ImpactSketch.Description = sketchDescriptionDE
	}
	if st.Final.Note == "" {
		st.Final.Note = finalNoteDE
	}
	for _, p := range []*PartyDetailsDE{&st.Vehicles.A, &st.Vehicles.B} {
		if p.Circumstances.BoxesMarkedTotal == 0 {
			p.Circumstances.BoxesMarkedTotal = p.Circumstances.countMarked()
		}
	}
}
