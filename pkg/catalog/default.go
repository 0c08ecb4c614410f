package catalog

// Sponsor branch literals recognised by the backend. Any other value of
// travel_covered_by (including unset) yields no sponsor sub-fields.
const (
	SponsorFamilyMember = "Family Member / Family Member in the EU"
	SponsorHostCompany  = "Host / Company / Organisation"
)

// Default returns the built-in question catalog. Entries are evaluated in
// this order by the resolver; later writes to the same field id win.
func Default() Catalog {
	return Catalog{
		{
			ID:       "personal_profile",
			Category: CategoryPersonalProfile,
			Shape:    ShapeGroup,
			Table:    TablePersonal,
			Fields: []SubField{
				{ID: "first_name", Placeholder: "First Name *"},
				{ID: "last_name", Placeholder: "Last Name *"},
				{ID: "email", Placeholder: "Email Address *"},
				{ID: "phone", Placeholder: "Phone Number *"},
				{ID: "date_of_birth", Placeholder: "Date of Birth"},
				{ID: "place_of_birth", Placeholder: "Place of Birth"},
				{ID: "gender", Placeholder: "Gender"},
				{ID: "nationality", Placeholder: "Nationality *"},
				{ID: "marital_status", Placeholder: "Marital Status"},
			},
		},
		{
			ID:       "passport_details",
			Category: CategoryPersonalProfile,
			Shape:    ShapeGroup,
			Table:    TablePersonal,
			Fields: []SubField{
				{ID: "passport_number", Placeholder: "Passport Number *"},
				{ID: "passport_issue_date", Placeholder: "Passport Issue Date *"},
				{ID: "passport_expiry_date", Placeholder: "Passport Expiry Date *"},
			},
		},
		{
			ID:       "home_address",
			Category: CategoryPersonalProfile,
			Shape:    ShapeGroup,
			Table:    TablePersonal,
			Fields: []SubField{
				{ID: "address_line_1", Placeholder: "Address Line 1 *"},
				{ID: "address_line_2", Placeholder: "Address Line 2"},
				{ID: "city", Placeholder: "City *"},
				{ID: "postal_code", Placeholder: "Postal Code *"},
				{ID: "country", Placeholder: "Country of Residence *"},
			},
		},
		{
			ID:          "travel_covered_by",
			DisplayText: "Who covers the cost of your travel?",
			Category:    CategoryFinancial,
			Mandatory:   true,
			Shape:       ShapeSponsor,
			Field:       "travel_covered_by",
			Branches: []Branch{
				{
					Equals: SponsorFamilyMember,
					Fields: []SubField{
						{ID: "sponsor_first_name", Placeholder: "Sponsor First Name *"},
						{ID: "sponsor_last_name", Placeholder: "Sponsor Last Name *"},
						{ID: "sponsor_relationship", Placeholder: "Relationship to Applicant *"},
						{ID: "sponsor_email", Placeholder: "Sponsor Email"},
						{ID: "sponsor_phone", Placeholder: "Sponsor Phone *"},
						{ID: "sponsor_address_1", Placeholder: "Sponsor Address"},
						{ID: "sponsor_city", Placeholder: "Sponsor City"},
						{ID: "sponsor_zip", Placeholder: "ZIP"},
						{ID: "sponsor_country", Placeholder: "Sponsor Country"},
					},
				},
				{
					Equals: SponsorHostCompany,
					Fields: []SubField{
						{ID: "company_name", Placeholder: "Company / Organisation Name *"},
						{ID: "company_registration_number", Placeholder: "Registration Number"},
						{ID: "company_contact_person", Placeholder: "Contact Person *"},
						{ID: "company_email", Placeholder: "Company Email"},
						{ID: "company_phone", Placeholder: "Company Phone *"},
						{ID: "company_address_1", Placeholder: "Company Address Line 1"},
						{ID: "company_address_2", Placeholder: "Company Address Line 2"},
						{ID: "company_city", Placeholder: "Company City"},
						{ID: "company_zip", Placeholder: "ZIP"},
						{ID: "company_country", Placeholder: "Company Country"},
					},
				},
			},
		},
		{
			ID:          "monthly_income",
			DisplayText: "Monthly income",
			Category:    CategoryFinancial,
			Shape:       ShapeScalar,
			Field:       "monthly_income",
		},
		{
			ID:          "has_credit_card",
			DisplayText: "Do you hold a credit card?",
			Category:    CategoryFinancial,
			Shape:       ShapeScalar,
			Field:       "has_credit_card",
		},
		{
			ID:          "occupation_status",
			DisplayText: "Occupation status",
			Category:    CategoryEmployment,
			Mandatory:   true,
			Shape:       ShapeScalar,
			Field:       "occupation_status",
		},
		{
			ID:         "employer_details",
			Category:   CategoryEmployment,
			Visibility: `occupation_status == "Employee"`,
			Shape:      ShapeGroup,
			Fields: []SubField{
				{ID: "company_name", Placeholder: "Employer Name *"},
				{ID: "job_title", Placeholder: "Job Title *"},
				{ID: "employment_start_date", Placeholder: "Employment Start Date"},
				{ID: "company_address_1", Placeholder: "Employer Address Line 1"},
				{ID: "company_address_2", Placeholder: "Employer Address Line 2"},
				{ID: "company_city", Placeholder: "Employer City"},
				{ID: "company_zip", Placeholder: "ZIP"},
				{ID: "company_phone", Placeholder: "Employer Phone"},
			},
		},
		{
			ID:         "self_employment_details",
			Category:   CategoryEmployment,
			Visibility: `occupation_status == "Self-Employed"`,
			Shape:      ShapeGroup,
			Fields: []SubField{
				{ID: "business_name", Placeholder: "Business Name *"},
				{ID: "business_registration_number", Placeholder: "Business Registration Number"},
				{ID: "business_address_1", Placeholder: "Business Address"},
				{ID: "business_city", Placeholder: "Business City"},
				{ID: "business_zip", Placeholder: "ZIP"},
			},
		},
		{
			ID:         "student_details",
			Category:   CategoryEmployment,
			Visibility: `occupation_status == "Student"`,
			Shape:      ShapeGroup,
			Fields: []SubField{
				{ID: "institution_name", Placeholder: "Institution Name *"},
				{ID: "course_name", Placeholder: "Course Name"},
				{ID: "student_id_number", Placeholder: "Student ID Number"},
			},
		},
		{
			ID:       "travel_plans",
			Category: CategoryTravelPlans,
			Shape:    ShapeGroup,
			Fields: []SubField{
				{ID: "purpose_of_visit", Placeholder: "Purpose of Visit *"},
				{ID: "departure_city", Placeholder: "Departure City"},
				{ID: "destination_city", Placeholder: "Destination City"},
				{ID: "itinerary_details", Placeholder: "Itinerary Details"},
			},
		},
		{
			ID:          "additional_notes",
			DisplayText: "Additional notes",
			Category:    CategoryTravelPlans,
			Shape:       ShapeScalar,
			Field:       "additional_notes",
		},
		{
			ID:       "accommodation",
			Category: CategoryAccommodation,
			Shape:    ShapeAccommodation,
			Branches: []Branch{
				{
					Match: []string{"tourist"},
					Fields: []SubField{
						{ID: "hotel_name", Placeholder: "Hotel Name *"},
						{ID: "hotel_address_1", Placeholder: "Hotel Address Line 1"},
						{ID: "hotel_address_2", Placeholder: "Hotel Address Line 2"},
						{ID: "hotel_city", Placeholder: "Hotel City"},
						{ID: "hotel_zip", Placeholder: "ZIP"},
						{ID: "hotel_phone", Placeholder: "Hotel Phone"},
						{ID: "hotel_booking_reference", Placeholder: "Booking Reference"},
						{ID: "check_in_date", Placeholder: "Check-in Date"},
						{ID: "check_out_date", Placeholder: "Check-out Date"},
					},
				},
				{
					Match: []string{"family", "friend"},
					Fields: []SubField{
						{ID: "inviting_first_name", Placeholder: "Inviting Person First Name *"},
						{ID: "inviting_last_name", Placeholder: "Inviting Person Last Name *"},
						{ID: "inviting_relationship", Placeholder: "Relationship to Applicant"},
						{ID: "inviting_phone", Placeholder: "Inviting Person Phone"},
						{ID: "inviting_address_1", Placeholder: "Inviting Person Address Line 1"},
						{ID: "inviting_address_2", Placeholder: "Inviting Person Address Line 2"},
						{ID: "inviting_city", Placeholder: "City"},
						{ID: "inviting_zip", Placeholder: "ZIP"},
						{ID: "inviting_country", Placeholder: "Country"},
						{ID: "stay_duration", Placeholder: "Duration of Stay"},
					},
				},
				{
					Match: []string{"business"},
					Fields: []SubField{
						{ID: "inviting_company_name", Placeholder: "Inviting Company Name *"},
						{ID: "inviting_company_contact", Placeholder: "Contact Person"},
						{ID: "inviting_company_email", Placeholder: "Company Email"},
						{ID: "inviting_company_phone", Placeholder: "Company Phone"},
						{ID: "inviting_company_address_1", Placeholder: "Company Address"},
						{ID: "inviting_company_city", Placeholder: "Company City"},
						{ID: "inviting_company_zip", Placeholder: "ZIP"},
						{ID: "invitation_letter_reference", Placeholder: "Invitation Letter Reference"},
					},
				},
			},
		},
		{
			ID:          "has_schengen_visa",
			DisplayText: "Do you currently hold a Schengen visa?",
			Category:    CategoryImmigration,
			Shape:       ShapeScalar,
			Field:       "has_schengen_visa",
		},
		{
			ID:         "schengen_visa_details",
			Category:   CategoryImmigration,
			Visibility: `has_schengen_visa == "Yes"`,
			Shape:      ShapeGroup,
			Fields: []SubField{
				{ID: "schengen_visa_number", Placeholder: "Schengen Visa Number"},
				{ID: "schengen_visa_issue_date", Placeholder: "Visa Issue Date"},
				{ID: "schengen_visa_expiry_date", Placeholder: "Visa Expiry Date"},
			},
		},
		{
			ID:               "schengen_visa_image",
			Category:         CategoryImmigration,
			Visibility:       `has_schengen_visa == "Yes"`,
			Shape:            ShapeFile,
			DocumentCategory: "schengen_visa",
		},
		{
			ID:       "residence_status",
			Category: CategoryImmigration,
			Shape:    ShapeGroup,
			Fields: []SubField{
				{ID: "residence_permit_number", Placeholder: "Residence Permit Number"},
				{ID: "residence_issue_date", Placeholder: "Permit Issue Date"},
				{ID: "residence_expiry_date", Placeholder: "Permit Expiry Date"},
				{ID: "residence_status_settled", Placeholder: "No expiry date found, status settled"},
			},
		},
		{
			ID:       "travel_history",
			Category: CategoryTravelHistory,
			Shape:    ShapeGroup,
			Fields: []SubField{
				{ID: "previously_visited", Placeholder: "Previously visited this country?"},
				{ID: "previous_visit_dates", Placeholder: "Previous Visit Dates"},
				{ID: "visa_refusals", Placeholder: "Any previous visa refusals?"},
			},
		},
		{
			ID:          "refusal_details",
			DisplayText: "Refusal details",
			Category:    CategoryTravelHistory,
			Visibility:  `visa_refusals == "Yes"`,
			Shape:       ShapeScalar,
			Field:       "refusal_details",
		},
		{
			ID:               "bookings",
			Category:         CategoryBookings,
			Shape:            ShapeFile,
			DocumentCategory: "bookings",
		},
		{
			ID:               "evisa_document",
			Category:         CategoryClientDocuments,
			Shape:            ShapeFile,
			DocumentCategory: "evisa",
		},
		{
			ID:               "share_code_document",
			Category:         CategoryClientDocuments,
			Shape:            ShapeFile,
			DocumentCategory: "share_code",
		},
	}
}
