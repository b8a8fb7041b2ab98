// Package report defines the European accident statement records in the three
// languages the service produces, plus the transform from raw model output
// into a complete record.
package report

// InjuriesEN is box 3 of the statement.
type InjuriesEN struct {
	Occurred    bool   `json:"occurred"`
	Description string `json:"description"`
}

type MaterialDamageEN struct {
	OtherThanVehicles bool   `json:"other_than_vehicles"`
	OtherObject       bool   `json:"other_object"`
	Description       string `json:"description"`
}

type WitnessEN struct {
	Name       string `json:"name"`
	FirstName  string `json:"first_name"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Telephone  string `json:"telephone"`
	Email      string `json:"email"`
}

type AccidentDetailsEN struct {
	Date           string           `json:"date"`
	Time           string           `json:"time"`
	Locality       string           `json:"locality"`
	Place          string           `json:"place"`
	Country        string           `json:"country"`
	Injuries       InjuriesEN       `json:"injuries"`
	MaterialDamage MaterialDamageEN `json:"material_damage"`
	Witnesses      []WitnessEN      `json:"witnesses"`
}

type InsuredPolicyholderEN struct {
	Name             string `json:"name"`
	FirstName        string `json:"first_name"`
	Address          string `json:"address"`
	PostalCode       string `json:"postal_code"`
	Country          string `json:"country"`
	TelephoneOrEmail string `json:"telephone_or_email"`
}

type VehicleMotorEN struct {
	MakeType              string `json:"make_type"`
	RegistrationNumber    string `json:"registration_number"`
	CountryOfRegistration string `json:"country_of_registration"`
}

type VehicleTrailerEN struct {
	RegistrationNumber    string `json:"registration_number"`
	CountryOfRegistration string `json:"country_of_registration"`
}

type VehicleDetailEN struct {
	Motor   VehicleMotorEN   `json:"motor"`
	Trailer VehicleTrailerEN `json:"trailer"`
}

type InsuranceAgencyEN struct {
	Name             string `json:"name"`
	Address          string `json:"address"`
	Country          string `json:"country"`
	TelephoneOrEmail string `json:"telephone_or_email"`
}

type InsuranceDetailsEN struct {
	CompanyName           string            `json:"company_name"`
	PolicyNumber          string            `json:"policy_number"`
	GreenCardNumber       string            `json:"green_card_number"`
	ValidFrom             string            `json:"valid_from"`
	ValidTo               string            `json:"valid_to"`
	Agency                InsuranceAgencyEN `json:"agency"`
	MaterialDamageCovered bool              `json:"material_damage_covered"`
}

type DriverEN struct {
	Name                 string `json:"name"`
	FirstName            string `json:"first_name"`
	Address              string `json:"address"`
	PostalCode           string `json:"postal_code"`
	Country              string `json:"country"`
	TelephoneOrEmail     string `json:"telephone_or_email"`
	DateOfBirth          string `json:"date_of_birth"`
	DrivingLicenceNumber string `json:"driving_licence_number"`
	Category             string `json:"category"`
	ValidUntil           string `json:"valid_until"`
}

// CircumstancesEN mirrors the 17 numbered checkboxes of box 12.
type CircumstancesEN struct {
	ParkedStopped         bool `json:"parked_stopped"`
	LeavingParking        bool `json:"leaving_parking"`
	EnteringParking       bool `json:"entering_parking"`
	EmergingCar           bool `json:"emerging_car"`
	EnteringCar           bool `json:"entering_car"`
	EnteringRoundabout    bool `json:"entering_roundabout"`
	CirculatingRoundabout bool `json:"circulating_roundabout"`
	StrikingRear          bool `json:"striking_rear"`
	GoingSameDirection    bool `json:"going_same_direction"`
	ChangingLanes         bool `json:"changing_lanes"`
	Overtaking            bool `json:"overtaking"`
	TurningRight          bool `json:"turning_right"`
	TurningLeft           bool `json:"turning_left"`
	Reversing             bool `json:"reversing"`
	EncroachingLane       bool `json:"encroaching_lane"`
	ComingRight           bool `json:"coming_right"`
	HadNotObserved        bool `json:"had_not_observed"`
	BoxesMarkedTotal      int  `json:"boxes_marked_total"`
}

func (c CircumstancesEN) countMarked() int {
	return countTrue(
		c.ParkedStopped, c.LeavingParking, c.EnteringParking, c.EmergingCar,
		c.EnteringCar, c.EnteringRoundabout, c.CirculatingRoundabout,
		c.StrikingRear, c.GoingSameDirection, c.ChangingLanes, c.Overtaking,
		c.TurningRight, c.TurningLeft, c.Reversing, c.EncroachingLane,
		c.ComingRight, c.HadNotObserved,
	)
}

type PartyDetailsEN struct {
	InsuredPolicyholder InsuredPolicyholderEN `json:"insured_policyholder"`
	Vehicle             VehicleDetailEN       `json:"vehicle"`
	Insurance           InsuranceDetailsEN    `json:"insurance"`
	Driver              DriverEN              `json:"driver"`
	InitialImpactPoint  string                `json:"initial_impact_point"`
	VisibleDamage       string                `json:"visible_damage"`
	Circumstances       CircumstancesEN       `json:"circumstances"`
	Remarks             string                `json:"remarks"`
	SignedBy            string                `json:"signed_by"`
}

type VehiclesEN struct {
	A PartyDetailsEN `json:"A"`
	B PartyDetailsEN `json:"B"`
}

type ImpactSketchEN struct {
	Description string `json:"description"`
	Layout      string `json:"layout"`
	Arrows      string `json:"arrows"`
	Positions   string `json:"positions"`
	RoadLines   string `json:"road_lines"`
}

type FinalEN struct {
	LiabilityAdmission bool   `json:"liability_admission"`
	Note               string `json:"note"`
}

type StatementEN struct {
	Sheet           string            `json:"sheet"`
	AccidentDetails AccidentDetailsEN `json:"accident_details"`
	Vehicles        VehiclesEN        `json:"vehicles"`
	ImpactSketch    ImpactSketchEN    `json:"impact_sketch"`
	Final           FinalEN           `json:"final"`
}

// ReportEN is the root record returned for English reports.
type ReportEN struct {
	AccidentStatement StatementEN `json:"accident_statement"`
}

const (
	sketchDescriptionEN = "Sketch of accident when impact occurred"
	finalNoteEN         = "Does not constitute an admission of liability, but a summary of identities and facts to speed up claim settlement"
)

// NewReportEN returns an empty record with the fixed boilerplate text filled
// in, witness lists non-nil so they serialize as [].
func NewReportEN() *ReportEN {
	r := &ReportEN{}
	r.AccidentStatement.AccidentDetails.Witnesses = []WitnessEN{}
	r.AccidentStatement.ImpactSketch.Description = sketchDescriptionEN
	r.AccidentStatement.Final.Note = finalNoteEN
	return r
}

func (r *ReportEN) finalize() {
	st := &r.AccidentStatement
	if st.AccidentDetails.Witnesses == nil {
		st.AccidentDetails.Witnesses = []WitnessEN{}
	}
	if st.ImpactSketch.Description == "" {
		st.ImpactSketch.Description = sketchDescriptionEN
	}
	if st.Final.Note == "" {
		st.Final.Note = finalNoteEN
	}
	for _, p := range []*PartyDetailsEN{&st.Vehicles.A, &st.Vehicles.B} {
		if p.Circumstances.BoxesMarkedTotal == 0 {
			p.Circumstances.BoxesMarkedTotal = p.Circumstances.countMarked()
		}
	}
}

func countTrue(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
