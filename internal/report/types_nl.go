package report

// Dutch record. Field names on the wire match the printed Dutch form, which is
// what downstream claim handlers expect.

type InjuriesNL struct {
	Occurred    bool   `json:"ja"`
	Description string `json:"beschrijving"`
}

type MaterialDamageNL struct {
	OtherThanVehicles bool   `json:"andere_dan_voertuigen_a_en_b"`
	OtherObject       bool   `json:"aan_andere_zaken_dan_voertuigen"`
	Description       string `json:"beschrijving"`
}

type WitnessNL struct {
	Name       string `json:"naam"`
	FirstName  string `json:"voornaam"`
	Address    string `json:"adres"`
	PostalCode string `json:"postcode"`
	Country    string `json:"land"`
	Telephone  string `json:"telefoon"`
	Email      string `json:"email"`
}

type AccidentDetailsNL struct {
	Date           string           `json:"datum"`
	Time           string           `json:"tijd"`
	Locality       string           `json:"plaats_locatie"`
	Place          string           `json:"plaats_exact"`
	Country        string           `json:"land"`
	Injuries       InjuriesNL       `json:"letsel"`
	MaterialDamage MaterialDamageNL `json:"materiele_schade"`
	Witnesses      []WitnessNL      `json:"getuigen"`
}

type InsuredPolicyholderNL struct {
	Name             string `json:"naam"`
	FirstName        string `json:"voornaam"`
	Address          string `json:"adres"`
	PostalCode       string `json:"postcode"`
	Country          string `json:"land"`
	TelephoneOrEmail string `json:"telefoon_of_email"`
}

type VehicleMotorNL struct {
	MakeType              string `json:"merk_type"`
	RegistrationNumber    string `json:"kenteken"`
	CountryOfRegistration string `json:"land_van_inschrijving"`
}

type VehicleTrailerNL struct {
	RegistrationNumber    string `json:"kenteken"`
	CountryOfRegistration string `json:"land_van_inschrijving"`
}

type VehicleDetailNL struct {
	Motor   VehicleMotorNL   `json:"motor"`
	Trailer VehicleTrailerNL `json:"aanhangwagen"`
}

type InsuranceAgencyNL struct {
	Name             string `json:"naam"`
	Address          string `json:"adres"`
	Country          string `json:"land"`
	TelephoneOrEmail string `json:"telefoon_of_email"`
}

type InsuranceDetailsNL struct {
	CompanyName           string            `json:"maatschappij_naam"`
	PolicyNumber          string            `json:"polisnummer"`
	GreenCardNumber       string            `json:"groene_kaart_nummer"`
	ValidFrom             string            `json:"geldig_vanaf"`
	ValidTo               string            `json:"geldig_tot"`
	Agency                InsuranceAgencyNL `json:"agentschap"`
	MaterialDamageCovered bool              `json:"materiele_schade_gedekt"`
}

type DriverNL struct {
	Name                 string `json:"naam"`
	FirstName            string `json:"voornaam"`
	Address              string `json:"adres"`
	PostalCode           string `json:"postcode"`
	Country              string `json:"land"`
	TelephoneOrEmail     string `json:"telefoon_of_email"`
	DateOfBirth          string `json:"geboortedatum"`
	DrivingLicenceNumber string `json:"rijbewijsnummer"`
	Category             string `json:"categorie"`
	ValidUntil           string `json:"geldig_tot"`
}

type CircumstancesNL struct {
	ParkedStopped         bool `json:"stond_geparkeerd_stond_stil"`
	LeavingParking        bool `json:"verliet_parkeerplaats_ging_weg_van_stilstaande_positie"`
	EnteringParking       bool `json:"reed_parkeerplaats_op_nam_stilstaande_positie_in"`
	EmergingCar           bool `json:"kwam_van_parkeerterrein_private_plaats_aardeweg"`
	EnteringCar           bool `json:"reed_parkeerterrein_private_plaats_aardeweg_op"`
	EnteringRoundabout    bool `json:"reed_rotonde_op"`
	CirculatingRoundabout bool `json:"reed_op_rotonde"`
	StrikingRear          bool `json:"reed_in_op_achterzijde_andere_voertuig_in_zelfde_rijstrook_en_richting"`
	GoingSameDirection    bool `json:"reed_in_zelfde_richting_maar_andere_rijstrook"`
	ChangingLanes         bool `json:"veranderde_van_rijstrook"`
	Overtaking            bool `json:"haalde_in"`
	TurningRight          bool `json:"sloeg_rechtsaf"`
	TurningLeft           bool `json:"sloeg_linksaf"`
	Reversing             bool `json:"reed_achteruit"`
	EncroachingLane       bool `json:"kwam_op_rijstrook_bestemd_voor_tegemoetkomend_verkeer"`
	ComingRight           bool `json:"kwam_van_rechts_op_kruispunt"`
	HadNotObserved        bool `json:"negeerde_verkeersteken_dat_voorrang_aanduidde_of_rood_licht"`
	BoxesMarkedTotal      int  `json:"totaal_aangekruiste_vakjes"`
}

func (c CircumstancesNL) countMarked() int {
	return countTrue(
		c.ParkedStopped, c.LeavingParking, c.EnteringParking, c.EmergingCar,
		c.EnteringCar, c.EnteringRoundabout, c.CirculatingRoundabout,
		c.StrikingRear, c.GoingSameDirection, c.ChangingLanes, c.Overtaking,
		c.TurningRight, c.TurningLeft, c.Reversing, c.EncroachingLane,
		c.ComingRight, c.HadNotObserved,
	)
}

type PartyDetailsNL struct {
	InsuredPolicyholder InsuredPolicyholderNL `json:"verzekeringnemer"`
	Vehicle             VehicleDetailNL       `json:"voertuig"`
	Insurance           InsuranceDetailsNL    `json:"verzekering"`
	Driver              DriverNL              `json:"bestuurder"`
	InitialImpactPoint  string                `json:"eerste_aanrijdingspunt"`
	VisibleDamage       string                `json:"zichtbare_schade"`
	Circumstances       CircumstancesNL       `json:"omstandigheden"`
	Remarks             string                `json:"opmerkingen"`
	SignedBy            string                `json:"ondertekend_door"`
}

type VehiclesNL struct {
	A PartyDetailsNL `json:"A"`
	B PartyDetailsNL `json:"B"`
}

type ImpactSketchNL struct {
	Description string `json:"beschrijving"`
	Layout      string `json:"layout"`
	Arrows      string `json:"pijlen"`
	Positions   string `json:"posities"`
	RoadLines   string `json:"wegmarkeringen"`
}

type FinalNL struct {
	LiabilityAdmission bool   `json:"erkenning_van_aansprakelijkheid"`
	Note               string `json:"opmerking"`
}

type StatementNL struct {
	Sheet           string            `json:"blad"`
	AccidentDetails AccidentDetailsNL `json:"ongevaldetails"`
	Vehicles        VehiclesNL        `json:"voertuigen"`
	ImpactSketch    ImpactSketchNL    `json:"aanrijdingsschets"`
	Final           FinalNL           `json:"slotverklaring"`
}

type ReportNL struct {
	AccidentStatement StatementNL `json:"ongevalsaangifte"`
}

const (
	sketchDescriptionNL = "Schets van de aanrijding op het ogenblik van de botsing"
	finalNoteNL         = "Betekent geen erkenning van aansprakelijkheid, maar dient ter vaststelling van de identiteit en de feiten en versnelt de regeling van de schade."
)

func NewReportNL() *ReportNL {
	r := &ReportNL{}
	r.AccidentStatement.AccidentDetails.Witnesses = []WitnessNL{}
	r.AccidentStatement.ImpactSketch.Description = sketchDescriptionNL
	r.AccidentStatement.Final.Note = finalNoteNL
	return r
}

func (r *ReportNL) finalize() {
	st := &r.AccidentStatement
	if st.AccidentDetails.Witnesses == nil {
		st.AccidentDetails.Witnesses = []WitnessNL{}
	}
	if st.ImpactSketch.Description == "" {
		st.ImpactSketch.Description = sketchDescriptionNL
	}
	if st.Final.Note == "" {
		st.Final.Note = finalNoteNL
	}
	for _, p := range []*PartyDetailsNL{&st.Vehicles.A, &st.Vehicles.B} {
		if p.Circumstances.BoxesMarkedTotal == 0 {
			p.Circumstances.BoxesMarkedTotal = p.Circumstances.countMarked()
		}
	}
}
