package record

// personalKeys is the fixed allow-list of identity, contact, passport, and
// visa-logistics fields stored on the primary record. Everything outside this
// list belongs to the dynamic question set, whether or not a catalog entry
// references it.
var personalKeys = []string{
	"first_name",
	"last_name",
	"email",
	"phone",
	"date_of_birth",
	"place_of_birth",
	"gender",
	"nationality",
	"marital_status",
	"passport_number",
	"passport_issue_date",
	"passport_expiry_date",
	"visa_type",
	"visa_country",
	"travel_date",
	"return_date",
	"appointment_date",
	"address_line_1",
	"address_line_2",
	"city",
	"postal_code",
	"country",
}

// PersonalKeys returns a copy of the personal-field allow-list in its fixed
// order.
func PersonalKeys() []string {
	return append([]string(nil), personalKeys...)
}

// Partition splits flat into personal and question fields. Personal fields
// are those present in the allow-list; every other key is copied to the
// question partition regardless of catalog membership. An empty input yields
// empty partitions; unknown keys are never an error.
func Partition(flat FlatRecord) PartitionedRecord {
	out := PartitionedRecord{
		Personal:  make(FlatRecord),
		Questions: make(FlatRecord),
	}
	if len(flat) == 0 {
		return out
	}

	personal := make(map[string]struct{}, len(personalKeys))
	for _, key := range personalKeys {
		personal[key] = struct{}{}
	}

	for key, value := range flat {
		if _, ok := personal[key]; ok {
			out.Personal[key] = value
			continue
		}
		out.Questions[key] = value
	}
	return out
}
