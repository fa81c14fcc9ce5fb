package identifier_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extensioncollection/kit/pkg/identifier"
)

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	t.Run("valid emails", func(t *testing.T) {
		t.Parallel()
		valid := []string{
			"a@b.co",
			"test@example.com",
			"user.name+tag@example.co.kr",
			"first_last%x@sub-domain.example.org",
			"1234567890@example.museum",
			"a@b." + strings.Repeat("z", 64),
		}
		for _, email := range valid {
			assert.True(t, identifier.IsValidEmail(email), "email should be valid: %q", email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		t.Parallel()
		invalid := []string{
			"",
			"a@@b.co",
			"a@b",
			"a@b.c",
			"@b.co",
			"a@.co",
			"a@b.123",
			" a@b.co",
			"a@b.co ",
			"a@b.co\n",
			"prefix a@b.co",
			"사용자@example.com",
			"a@b." + strings.Repeat("z", 65),
		}
		for _, email := range invalid {
			assert.False(t, identifier.IsValidEmail(email), "email should be invalid: %q", email)
		}
	})
}

func TestIsValidPhoneNumber(t *testing.T) {
	t.Parallel()

	t.Run("valid numbers", func(t *testing.T) {
		t.Parallel()
		for _, phone := range []string{"01012345678", "01199998888", "00000000000"} {
			assert.True(t, identifier.IsValidPhoneNumber(phone), "phone should be valid: %q", phone)
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		t.Parallel()
		invalid := []string{
			"",
			"010-1234-5678",
			"0101234567",
			"010123456789",
			" 01012345678",
			"01012345678 ",
			"01012345678\n",
			"0101234567a",
			"+8201012345678",
			"０１０１２３４５６７８",
		}
		for _, phone := range invalid {
			assert.False(t, identifier.IsValidPhoneNumber(phone), "phone should be invalid: %q", phone)
		}
	})
}

func TestIsValidVehiclePlate_Personal(t *testing.T) {
	t.Parallel()

	valid := []string{"123가4567", "12가3456", "12힣3456", "123아4567", "99하0000"}
	for _, plate := range valid {
		assert.True(t, identifier.IsValidVehiclePlate(plate, identifier.WithPersonalUse()), "plate should be valid: %q", plate)
	}

	invalid := []string{
		"",
		"1234가4567",
		"1가3456",
		"12가345",
		"12가34567",
		"12A3456",
		"12가나3456",
		"12ㄱ3456",
		"12 가3456",
		"서울80아1234",
	}
	for _, plate := range invalid {
		assert.False(t, identifier.IsValidVehiclePlate(plate, identifier.WithPersonalUse()), "plate should be invalid: %q", plate)
	}
}

func TestIsValidVehiclePlate_Business(t *testing.T) {
	t.Parallel()

	t.Run("new format", func(t *testing.T) {
		t.Parallel()
		for _, plate := range []string{"123아4567", "123바4567", "123사4567", "123자4567"} {
			assert.True(t, identifier.IsValidVehiclePlate(plate, identifier.WithBusinessUse(true)), "plate should be valid: %q", plate)
		}
	})

	t.Run("old format", func(t *testing.T) {
		t.Parallel()
		valid := []string{"서울80아1234", "부산98자1234", "경기87바5678", "세종99사0001", "제주81아9999"}
		for _, plate := range valid {
			assert.True(t, identifier.IsValidVehiclePlate(plate), "plate should be valid: %q", plate)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		t.Parallel()
		invalid := []string{
			"",
			"123가4567",
			"12가3456",
			"12아3456",
			"1234아4567",
			"부산97자1234",
			"경기88바5678",
			"서울80가1234",
			"서울80아123",
			"서울 80아1234",
			"뉴욕80아1234",
			"서울시80아1234",
		}
		for _, plate := range invalid {
			assert.False(t, identifier.IsValidVehiclePlate(plate), "plate should be invalid: %q", plate)
		}
	})

	t.Run("region class accepts any pair of region characters", func(t *testing.T) {
		t.Parallel()
		for _, plate := range []string{"울서80아1234", "||81바1234", "남북98자1234", "종세82사1234"} {
			assert.True(t, identifier.IsValidVehiclePlate(plate), "plate should be valid: %q", plate)
		}
	})
}

func TestIsValidVehiclePlate_StrictRegions(t *testing.T) {
	t.Parallel()

	valid := []string{"서울80아1234", "경북99자0000", "123아4567"}
	for _, plate := range valid {
		assert.True(t, identifier.IsValidVehiclePlate(plate, identifier.WithStrictRegions()), "plate should be valid: %q", plate)
	}

	invalid := []string{"울서80아1234", "||81바1234", "남북98자1234"}
	for _, plate := range invalid {
		assert.False(t, identifier.IsValidVehiclePlate(plate, identifier.WithStrictRegions()), "plate should be invalid: %q", plate)
	}

	assert.True(t, identifier.IsValidVehiclePlate("12가3456", identifier.WithStrictRegions(), identifier.WithPersonalUse()))
}

func TestIsValidVehiclePlate_UnicodeDigits(t *testing.T) {
	t.Parallel()

	personal := []string{"１２가３４５６", "١٢가٣٤٥٦", "१२३가४५६७", "12가３４5６"}
	for _, plate := range personal {
		assert.True(t, identifier.IsValidVehiclePlate(plate, identifier.WithPersonalUse()), "plate should be valid: %q", plate)
	}

	business := []string{"１２３아４５６７", "٠١٢바٣٤٥٦", "서울80아１２３４"}
	for _, plate := range business {
		assert.True(t, identifier.IsValidVehiclePlate(plate), "plate should be valid: %q", plate)
	}
	assert.True(t, identifier.IsValidVehiclePlate("서울80아١٢٣٤", identifier.WithStrictRegions()))

	// The use code after the region stays ASCII.
	assert.False(t, identifier.IsValidVehiclePlate("서울８０아1234"))
	assert.False(t, identifier.IsValidVehiclePlate("１２가３４５", identifier.WithPersonalUse()))
	assert.False(t, identifier.IsValidVehiclePlate("１２가３４５６"))

	// Phone numbers do not widen.
	assert.False(t, identifier.IsValidPhoneNumber("٠١٠١٢٣٤٥٦٧٨"))
}

func TestIsValidVehiclePlate_DefaultIsBusiness(t *testing.T) {
	t.Parallel()

	inputs := []string{"123가4567", "12가3456", "123아4567", "서울80아1234", "울서80아1234", "", "garbage"}
	for _, in := range inputs {
		assert.Equal(t,
			identifier.IsValidVehiclePlate(in, identifier.WithBusinessUse(true)),
			identifier.IsValidVehiclePlate(in),
			"default must match business use for %q", in)
	}

	assert.True(t, identifier.IsValidVehiclePlate("123아4567", nil))
}

func TestMatch(t *testing.T) {
	t.Parallel()

	assert.True(t, identifier.Match(identifier.Email, "a@b.co"))
	assert.True(t, identifier.Match(identifier.PhoneNumber, "01012345678"))
	assert.True(t, identifier.Match(identifier.BusinessVehiclePlateOld, "서울80아1234"))
	assert.False(t, identifier.Match(identifier.BusinessVehiclePlateOld, "123아4567"))
	assert.True(t, identifier.Match(identifier.BusinessVehiclePlateNew, "123아4567"))
	assert.True(t, identifier.Match(identifier.PersonalVehiclePlate, "12가3456"))
	assert.False(t, identifier.Match(identifier.Kind(0), "a@b.co"))
	assert.False(t, identifier.Match(identifier.Kind(42), "a@b.co"))
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []identifier.Kind{identifier.Email}, identifier.Classify("a@b.co"))
	assert.Equal(t, []identifier.Kind{identifier.PhoneNumber}, identifier.Classify("01012345678"))
	assert.Equal(t,
		[]identifier.Kind{identifier.BusinessVehiclePlateNew, identifier.PersonalVehiclePlate},
		identifier.Classify("123아4567"))
	assert.Empty(t, identifier.Classify("nothing to see"))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  identifier.Request
		want bool
	}{
		{"email", identifier.Request{Input: "a@b.co", Category: identifier.CategoryEmail}, true},
		{"bad email", identifier.Request{Input: "a@b", Category: identifier.CategoryEmail}, false},
		{"phone", identifier.Request{Input: "01012345678", Category: identifier.CategoryPhone}, true},
		{"zero use is business", identifier.Request{Input: "123가4567", Category: identifier.CategoryVehicle}, false},
		{"business plate", identifier.Request{Input: "123아4567", Category: identifier.CategoryVehicle, VehicleUse: identifier.BusinessUse}, true},
		{"personal plate", identifier.Request{Input: "123가4567", Category: identifier.CategoryVehicle, VehicleUse: identifier.PersonalUse}, true},
		{"unknown category", identifier.Request{Input: "a@b.co", Category: "postcode"}, false},
		{"empty category", identifier.Request{Input: "a@b.co"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, identifier.Result{Matched: tt.want}, identifier.Validate(tt.req))
		})
	}
}

func TestPatterns(t *testing.T) {
	t.Parallel()

	ps := identifier.Patterns()
	require.Len(t, ps, len(identifier.Kinds()))
	for i, k := range identifier.Kinds() {
		assert.Equal(t, k, ps[i].Kind())
		assert.NotEmpty(t, ps[i].Description())
		assert.True(t, strings.HasPrefix(ps[i].Expression(), "^"), "pattern %s must be anchored", k)
		assert.True(t, strings.HasSuffix(ps[i].Expression(), "$"), "pattern %s must be anchored", k)

		p, ok := identifier.PatternFor(k)
		require.True(t, ok)
		assert.Same(t, ps[i], p)
	}

	// Callers cannot disturb the table through the returned slice.
	ps[0] = nil
	assert.NotNil(t, identifier.Patterns()[0])

	_, ok := identifier.PatternFor(identifier.Kind(99))
	assert.False(t, ok)

	strict := identifier.StrictBusinessPlateOld()
	assert.Equal(t, identifier.BusinessVehiclePlateOld, strict.Kind())
	assert.NotEqual(t, ps[2].Expression(), strict.Expression())
}

func TestKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "email", identifier.Email.String())
	assert.Equal(t, "phone_number", identifier.PhoneNumber.String())
	assert.Equal(t, "business_vehicle_plate_old", identifier.BusinessVehiclePlateOld.String())
	assert.Equal(t, "business_vehicle_plate_new", identifier.BusinessVehiclePlateNew.String())
	assert.Equal(t, "personal_vehicle_plate", identifier.PersonalVehiclePlate.String())
	assert.Equal(t, "unknown", identifier.Kind(0).String())
	assert.False(t, identifier.Kind(0).Valid())

	assert.Equal(t, "business", identifier.BusinessUse.String())
	assert.Equal(t, "personal", identifier.PersonalUse.String())
}

func TestIdempotentAndConcurrent(t *testing.T) {
	t.Parallel()

	inputs := []string{"a@b.co", "01012345678", "123아4567", "123가4567", "울서80아1234", "", "x"}
	want := make([][3]bool, len(inputs))
	for i, in := range inputs {
		want[i] = [3]bool{
			identifier.IsValidEmail(in),
			identifier.IsValidPhoneNumber(in),
			identifier.IsValidVehiclePlate(in),
		}
	}

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				for i, in := range inputs {
					got := [3]bool{
						identifier.IsValidEmail(in),
						identifier.IsValidPhoneNumber(in),
						identifier.IsValidVehiclePlate(in),
					}
					assert.Equal(t, want[i], got, "input %q", in)
				}
			}
		}()
	}
	wg.Wait()
}
