package validate_test

import (
	"testing"

	"github.com/Astemirdum/ureserve/pkg/validate"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()
	type req struct {
		StudentID    string `validate:"required,matricula"`
		FacilityType string `validate:"required,facility"`
	}
	tests := []struct {
		name    string
		in      req
		wantErr bool
	}{
		{name: "ok", in: req{StudentID: "2025-7896", FacilityType: "Cubicle"}},
		{name: "ok. no dash", in: req{StudentID: "20257896", FacilityType: "MeetingRoom"}},
		{name: "ok. facility case", in: req{StudentID: "2025", FacilityType: "laboratory"}},
		{name: "ok. facility upper", in: req{StudentID: "2025", FacilityType: "VIPROOM"}},
		{name: "err. leading dash", in: req{StudentID: "-2025", FacilityType: "Cubicle"}, wantErr: true},
		{name: "err. spaces", in: req{StudentID: "2025 7896", FacilityType: "Cubicle"}, wantErr: true},
		{name: "err. facility", in: req{StudentID: "2025", FacilityType: "Gym"}, wantErr: true},
		{name: "err. empty", in: req{}, wantErr: true},
	}
	v := validate.NewCustomValidator()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
