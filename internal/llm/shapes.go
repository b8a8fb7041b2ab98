package llm

// Canonical JSON examples embedded in the prompts. The model copies structure
// far more reliably from a worked example than from a schema, so each shape is
// a complete instance of the record the transformer expects.

const damageShape = `{
  "vehicle_info": {
    "make": "Toyota",
    "model": "Corolla",
    "year": "2019",
    "color": "Blue",
    "type": "Sedan",
    "trim": "LE",
    "make_certainty": 95.5,
    "model_certainty": 87.3
  },
  "damage_data": {
    "damaged_parts": [
      {
        "part": "Front Bumper",
        "damage_type": "Scratch",
        "severity": "Moderate",
        "repair_action": "Repaint"
      },
      {
        "part": "Hood",
        "damage_type": "Dent",
        "severity": "Minor",
        "repair_action": "Repair and Repaint"
      }
    ],
    "cost_breakdown": {
      "parts": [
        {"name": "Paint supplies", "cost": 150, "min_cost": 120, "max_cost": 180},
        {"name": "Primer", "cost": 50, "min_cost": 40, "max_cost": 60}
      ],
      "labor": [
        {"service": "Bumper removal and reinstallation", "hours": 1.5, "rate": 85, "cost": 127.5, "min_cost": 110, "max_cost": 150},
        {"service": "Dent repair", "hours": 2, "rate": 90, "cost": 180, "min_cost": 150, "max_cost": 220},
        {"service": "Painting and finishing", "hours": 2.5, "rate": 85, "cost": 212.5, "min_cost": 180, "max_cost": 250}
      ],
      "additional_fees": [
        {"description": "Disposal fees", "cost": 25, "min_cost": 25, "max_cost": 25},
        {"description": "Shop supplies", "cost": 35, "min_cost": 30, "max_cost": 40}
      ],
      "parts_total": {"min": 160, "max": 240, "expected": 200, "currency": "EUR"},
      "labor_total": {"min": 440, "max": 620, "expected": 520, "currency": "EUR"},
      "fees_total": {"min": 55, "max": 65, "expected": 60, "currency": "EUR"},
      "total_estimate": {"min": 655, "max": 925, "expected": 780, "currency": "EUR"}
    }
  }
}`

const reportShapeEN = `{
  "accident_statement": {
    "sheet": "",
    "accident_details": {
      "date": "", "time": "", "locality": "", "place": "", "country": "",
      "injuries": {"occurred": false, "description": ""},
      "material_damage": {"other_than_vehicles": false, "other_object": false, "description": ""},
      "witnesses": [
        {"name": "", "first_name": "", "address": "", "postal_code": "", "country": "", "telephone": "", "email": ""}
      ]
    },
    "vehicles": {
      "A": {
        "insured_policyholder": {"name": "", "first_name": "", "address": "", "postal_code": "", "country": "", "telephone_or_email": ""},
        "vehicle": {
          "motor": {"make_type": "", "registration_number": "", "country_of_registration": ""},
          "trailer": {"registration_number": "", "country_of_registration": ""}
        },
        "insurance": {
          "company_name": "", "policy_number": "", "green_card_number": "", "valid_from": "", "valid_to": "",
          "agency": {"name": "", "address": "", "country": "", "telephone_or_email": ""},
          "material_damage_covered": false
        },
        "driver": {"name": "", "first_name": "", "address": "", "postal_code": "", "country": "", "telephone_or_email": "", "date_of_birth": "", "driving_licence_number": "", "category": "", "valid_until": ""},
        "initial_impact_point": "",
        "visible_damage": "",
        "circumstances": {
          "parked_stopped": false, "leaving_parking": false, "entering_parking": false,
          "emerging_car": false, "entering_car": false, "entering_roundabout": false,
          "circulating_roundabout": false, "striking_rear": false, "going_same_direction": false,
          "changing_lanes": false, "overtaking": false, "turning_right": false, "turning_left": false,
          "reversing": false, "encroaching_lane": false, "coming_right": false, "had_not_observed": false,
          "boxes_marked_total": 0
        },
        "remarks": "",
        "signed_by": ""
      },
      "B": { "...": "identical structure to A" }
    },
    "impact_sketch": {"description": "", "layout": "", "arrows": "", "positions": "", "road_lines": ""},
    "final": {"liability_admission": false, "note": ""}
  }
}`

const reportShapeNL = `{
  "ongevalsaangifte": {
    "blad": "",
    "ongevaldetails": {
      "datum": "", "tijd": "", "plaats_locatie": "", "plaats_exact": "", "land": "",
      "letsel": {"ja": false, "beschrijving": ""},
      "materiele_schade": {"andere_dan_voertuigen_a_en_b": false, "aan_andere_zaken_dan_voertuigen": false, "beschrijving": ""},
      "getuigen": [
        {"naam": "", "voornaam": "", "adres": "", "postcode": "", "land": "", "telefoon": "", "email": ""}
      ]
    },
    "voertuigen": {
      "A": {
        "verzekeringnemer": {"naam": "", "voornaam": "", "adres": "", "postcode": "", "land": "", "telefoon_of_email": ""},
        "voertuig": {
          "motor": {"merk_type": "", "kenteken": "", "land_van_inschrijving": ""},
          "aanhangwagen": {"kenteken": "", "land_van_inschrijving": ""}
        },
        "verzekering": {
          "maatschappij_naam": "", "polisnummer": "", "groene_kaart_nummer": "", "geldig_vanaf": "", "geldig_tot": "",
          "agentschap": {"naam": "", "adres": "", "land": "", "telefoon_of_email": ""},
          "materiele_schade_gedekt": false
        },
        "bestuurder": {"naam": "", "voornaam": "", "adres": "", "postcode": "", "land": "", "telefoon_of_email": "", "geboortedatum": "", "rijbewijsnummer": "", "categorie": "", "geldig_tot": ""},
        "eerste_aanrijdingspunt": "",
        "zichtbare_schade": "",
        "omstandigheden": {
          "stond_geparkeerd_stond_stil": false, "verliet_parkeerplaats_ging_weg_van_stilstaande_positie": false,
          "reed_parkeerplaats_op_nam_stilstaande_positie_in": false, "kwam_van_parkeerterrein_private_plaats_aardeweg": false,
          "reed_parkeerterrein_private_plaats_aardeweg_op": false, "reed_rotonde_op": false, "reed_op_rotonde": false,
          "reed_in_op_achterzijde_andere_voertuig_in_zelfde_rijstrook_en_richting": false,
          "reed_in_zelfde_richting_maar_andere_rijstrook": false, "veranderde_van_rijstrook": false,
          "haalde_in": false, "sloeg_rechtsaf": false, "sloeg_linksaf": false, "reed_achteruit": false,
          "kwam_op_rijstrook_bestemd_voor_tegemoetkomend_verkeer": false, "kwam_van_rechts_op_kruispunt": false,
          "negeerde_verkeersteken_dat_voorrang_aanduidde_of_rood_licht": false,
          "totaal_aangekruiste_vakjes": 0
        },
        "opmerkingen": "",
        "ondertekend_door": ""
      },
      "B": { "...": "identieke structuur als A" }
    },
    "aanrijdingsschets": {"beschrijving": "", "layout": "", "pijlen": "", "posities": "", "wegmarkeringen": ""},
    "slotverklaring": {"erkenning_van_aansprakelijkheid": false, "opmerking": ""}
  }
}`

const reportShapeDE = `{
  "unfallbericht": {
    "blatt": "",
    "unfalldetails": {
      "datum": "", "uhrzeit": "", "oertlichkeit": "", "ort": "", "land": "",
      "verletzungen": {"stattgefunden": false, "beschreibung": ""},
      "sachschaeden": {"andere_als_fahrzeuge_a_und_b": false, "an_anderen_gegenstaenden": false, "beschreibung": ""},
      "zeugen": [
        {"name": "", "vorname": "", "anschrift": "", "postleitzahl": "", "land": "", "telefon": "", "email": ""}
      ]
    },
    "fahrzeuge": {
      "A": {
        "versicherungsnehmer": {"name": "", "vorname": "", "anschrift": "", "postleitzahl": "", "land": "", "telefon_oder_email": ""},
        "fahrzeug": {
          "motor": {"marke_typ": "", "amtliches_kennzeichen": "", "zulassungsland": ""},
          "anhaenger": {"amtliches_kennzeichen": "", "zulassungsland": ""}
        },
        "versicherung": {
          "gesellschaftsname": "", "policennummer": "", "gruene_karte_nummer": "", "gueltig_ab": "", "gueltig_bis": "",
          "agentur": {"name": "", "anschrift": "", "land": "", "telefon_oder_email": ""},
          "sachschaeden_gedeckt": false
        },
        "fahrer": {"name": "", "vorname": "", "anschrift": "", "postleitzahl": "", "land": "", "telefon_oder_email": "", "geburtsdatum": "", "fuehrerscheinnummer": "", "kategorie": "", "gueltig_bis": ""},
        "erster_aufprallpunkt": "",
        "sichtbare_schaeden": "",
        "umstaende": {
          "geparkt_hielt_an": false, "verliess_parkplatz_oeffnete_tuer": false, "bog_in_parkplatz_ein": false,
          "kam_aus_parkplatz_grundstueck_feldweg": false, "bog_auf_parkplatz_grundstueck_feldweg_ein": false,
          "bog_in_kreisverkehr_ein": false, "fuhr_in_kreisverkehr": false,
          "fuhr_auf_heck_eines_anderen_fahrzeugs_auf_gleiche_richtung_spur": false,
          "fuhr_in_gleicher_richtung_anderer_fahrstreifen": false, "wechselte_fahrstreifen": false,
          "ueberholte": false, "bog_rechts_ab": false, "bog_links_ab": false, "fuhr_rueckwaerts": false,
          "drang_auf_fahrstreifen_fuer_gegenverkehr_ein": false, "kam_von_rechts_kreuzung": false,
          "hatte_vorfahrt_oder_rote_ampel_nicht_beachtet": false,
          "angekreuzte_felder_summe": 0
        },
        "bemerkungen": "",
        "unterschrieben_von": ""
      },
      "B": { "...": "identische Struktur wie A" }
    },
    "unfallskizze": {"beschreibung": "", "layout": "", "pfeile": "", "positionen": "", "fahrbahnmarkierungen": ""},
    "abschluss": {"haftungsanerkenntnis": false, "hinweis": ""}
  }
}`
