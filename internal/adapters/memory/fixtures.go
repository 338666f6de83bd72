package memory

import "github.com/doodledaron/findcare/backend/internal/domain/entities"

// The fixture catalog mirrors the demo hospital's data set. Each seed
// function returns fresh copies so every store owns its mutable state.

// SeedDoctors returns the doctor fixture records.
func SeedDoctors() []*entities.Doctor {
	return []*entities.Doctor{
		{
			ID: 1, Name: "Dr. James Wong", Specialty: "Neurology Specialist",
			Department: "Neurology", HospitalID: 1, Rating: 4.8,
			PatientsInQueue: 3, WaitMinutes: 10, ExperienceYears: 12,
			AvailableSlots: []string{"2:30 PM", "3:00 PM", "4:15 PM"},
			Languages:      []string{"English", "Mandarin", "Cantonese"},
			Education:      "MD, Harvard Medical School",
			Certifications: []string{"Board Certified Neurologist", "Epilepsy Specialist"},
			ConsultationFee: 120, Image: "/doctors/doctor-1.jpg",
		},
		{
			ID: 2, Name: "Dr. Sarah Chen", Specialty: "Cardiology Specialist",
			Department: "Cardiology", HospitalID: 1, Rating: 4.9,
			PatientsInQueue: 1, WaitMinutes: 5, ExperienceYears: 15,
			AvailableSlots: []string{"2:45 PM", "3:30 PM", "5:00 PM"},
			Languages:      []string{"English", "Mandarin"},
			Education:      "MD, Johns Hopkins University",
			Certifications: []string{"Board Certified Cardiologist", "Interventional Cardiology"},
			ConsultationFee: 150, Image: "/doctors/doctor-2.jpg",
		},
		{
			ID: 3, Name: "Dr. Ahmad Rahman", Specialty: "Internal Medicine",
			Department: "Internal Medicine", HospitalID: 2, Rating: 4.7,
			PatientsInQueue: 5, WaitMinutes: 15, ExperienceYears: 10,
			AvailableSlots: []string{"3:15 PM", "4:00 PM", "4:45 PM"},
			Languages:      []string{"English", "Malay", "Tamil"},
			Education:      "MBBS, National University of Singapore",
			Certifications: []string{"Board Certified Internal Medicine", "Diabetes Specialist"},
			ConsultationFee: 100, Image: "/doctors/doctor-3.jpg",
		},
		{
			ID: 4, Name: "Dr. Li Wei Ming", Specialty: "Emergency Medicine",
			Department: "Emergency", HospitalID: 1, Rating: 4.6,
			PatientsInQueue: 2, WaitMinutes: 8, ExperienceYears: 8,
			AvailableSlots: []string{"2:00 PM", "2:30 PM", "3:45 PM"},
			Languages:      []string{"English", "Mandarin", "Hokkien"},
			Education:      "MD, University of Melbourne",
			Certifications: []string{"Board Certified Emergency Medicine", "ACLS Certified"},
			ConsultationFee: 80, Image: "/doctors/doctor-4.jpg",
		},
		{
			ID: 5, Name: "Dr. Maria Rodriguez", Specialty: "Pediatrics",
			Department: "Pediatrics", HospitalID: 3, Rating: 4.8,
			PatientsInQueue: 3, WaitMinutes: 12, ExperienceYears: 14,
			AvailableSlots: []string{"3:00 PM", "4:30 PM", "5:15 PM"},
			Languages:      []string{"English", "Spanish", "Portuguese"},
			Education:      "MD, University of Barcelona",
			Certifications: []string{"Board Certified Pediatrician", "Pediatric Emergency Medicine"},
			ConsultationFee: 110, Image: "/doctors/doctor-5.jpg",
		},
	}
}

// SeedHospitals returns the hospital fixture records.
func SeedHospitals() []*entities.Hospital {
	return []*entities.Hospital{
		{
			ID: 1, Name: "Singapore General Hospital", Address: "Outram Road",
			Type: entities.HospitalTypePublic,
			Specialties: []string{"Cardiology", "Emergency", "Internal Medicine", "Neurology"},
			Rating: 4.5, DistanceKm: 2.5, Phone: "+65 6222 3322",
			EmergencyServices: true, Image: "/hospitals/sgh.jpg",
			OperatingHours: "Open 24 hours",
			Facilities:     []string{"Emergency Room", "ICU", "Surgery", "Radiology", "Laboratory"},
			Insurance:      []string{"Medisave", "Private Insurance", "Corporate Insurance"},
		},
		{
			ID: 2, Name: "National University Hospital", Address: "Lower Kent Ridge Road",
			Type: entities.HospitalTypePublic,
			Specialties: []string{"Cardiology", "Neurology", "Oncology", "Orthopedics"},
			Rating: 4.3, DistanceKm: 4.1, Phone: "+65 6779 5555",
			EmergencyServices: true, Image: "/hospitals/nuh.jpg",
			OperatingHours: "Open 24 hours",
			Facilities:     []string{"Emergency Room", "Cancer Center", "Research Center", "Pharmacy"},
			Insurance:      []string{"Medisave", "Private Insurance"},
		},
		{
			ID: 3, Name: "Mount Elizabeth Hospital", Address: "Mount Elizabeth",
			Type: entities.HospitalTypePrivate,
			Specialties: []string{"Cardiology", "Plastic Surgery", "Orthopedics", "Gastroenterology"},
			Rating: 4.7, DistanceKm: 3.2, Phone: "+65 6737 2666",
			EmergencyServices: true, Image: "/hospitals/mount-elizabeth.jpg",
			OperatingHours: "Open 24 hours",
			Facilities:     []string{"Private Rooms", "VIP Suites", "Advanced Surgery", "Wellness Center"},
			Insurance:      []string{"Private Insurance", "Corporate Insurance", "International Insurance"},
		},
		{
			ID: 4, Name: "Raffles Hospital", Address: "North Bridge Road",
			Type: entities.HospitalTypePrivate,
			Specialties: []string{"Cardiology", "Gastroenterology", "Dermatology", "Ophthalmology"},
			Rating: 4.6, DistanceKm: 5.8, Phone: "+65 6311 1111",
			EmergencyServices: true, Image: "/hospitals/raffles.jpg",
			OperatingHours: "Open 24 hours",
			Facilities:     []string{"Executive Health Screening", "Day Surgery", "Specialist Clinics", "Concierge Services"},
			Insurance:      []string{"Private Insurance", "Corporate Insurance", "International Insurance"},
		},
		{
			ID: 5, Name: "Changi General Hospital", Address: "Simei Street 3",
			Type: entities.HospitalTypePublic,
			Specialties: []string{"Emergency", "Internal Medicine", "Surgery", "Orthopedics"},
			Rating: 4.2, DistanceKm: 7.3, Phone: "+65 6788 8833",
			EmergencyServices: true, Image: "/hospitals/cgh.jpg",
			OperatingHours: "Open 24 hours",
			Facilities:     []string{"Emergency Room", "Surgery", "Outpatient Clinics", "Laboratory"},
			Insurance:      []string{"Medisave", "Private Insurance", "Corporate Insurance"},
		},
		{
			ID: 6, Name: "Gleneagles Hospital", Address: "Napier Road",
			Type: entities.HospitalTypePrivate,
			Specialties: []string{"Cardiology", "Oncology", "Neurosurgery", "Orthopedics"},
			Rating: 4.8, DistanceKm: 4.7, Phone: "+65 6473 7222",
			EmergencyServices: true, Image: "/hospitals/gleneagles.jpg",
			OperatingHours: "Open 24 hours",
			Facilities:     []string{"Private Suites", "Advanced ICU", "Robotic Surgery", "Executive Lounge"},
			Insurance:      []string{"Private Insurance", "Corporate Insurance", "International Insurance"},
		},
	}
}

// SeedDepartments returns the department catalog.
func SeedDepartments() []*entities.Department {
	return []*entities.Department{
		{ID: 1, Name: "Cardiology", Description: "Heart and cardiovascular system treatment",
			Specialties: []string{"Interventional Cardiology", "Electrophysiology", "Heart Surgery"}, Color: "#EF4444"},
		{ID: 2, Name: "Neurology", Description: "Brain and nervous system disorders",
			Specialties: []string{"Epilepsy", "Stroke Care", "Movement Disorders", "Neurocritical Care"}, Color: "#8B5CF6"},
		{ID: 3, Name: "Internal Medicine", Description: "General internal medicine and chronic conditions",
			Specialties: []string{"Diabetes Care", "Hypertension", "Infectious Diseases"}, Color: "#06B6D4"},
		{ID: 4, Name: "Emergency", Description: "Emergency and critical care services",
			Specialties: []string{"Trauma Care", "Critical Care", "Emergency Surgery"}, Color: "#F59E0B"},
		{ID: 5, Name: "Orthopedics", Description: "Bone, joint, and musculoskeletal treatment",
			Specialties: []string{"Sports Medicine", "Joint Replacement", "Spine Surgery"}, Color: "#10B981"},
		{ID: 6, Name: "Dermatology", Description: "Skin, hair, and nail conditions",
			Specialties: []string{"Skin Cancer", "Cosmetic Dermatology", "Pediatric Dermatology"}, Color: "#F97316"},
		{ID: 7, Name: "Pediatrics", Description: "Medical care for infants, children, and adolescents",
			Specialties: []string{"Pediatric Emergency", "Neonatology", "Pediatric Surgery"}, Color: "#EC4899"},
		{ID: 8, Name: "Gastroenterology", Description: "Digestive system and liver disorders",
			Specialties: []string{"Endoscopy", "Hepatology", "IBD Care"}, Color: "#84CC16"},
	}
}

// SeedSymptoms returns the symptom picker catalog.
func SeedSymptoms() []*entities.Symptom {
	return []*entities.Symptom{
		{ID: 1, Name: "Chest Pain", Category: "cardiovascular", Severity: entities.SeverityHigh,
			Icon: "heart", SuggestedSpecialty: "Cardiology", Description: "Pain or discomfort in the chest area"},
		{ID: 2, Name: "Headache", Category: "neurological", Severity: entities.SeverityMedium,
			Icon: "brain", SuggestedSpecialty: "Neurology", Description: "Pain in the head or upper neck"},
		{ID: 3, Name: "Fever", Category: "general", Severity: entities.SeverityMedium,
			Icon: "thermometer", SuggestedSpecialty: "Internal Medicine", Description: "Body temperature higher than normal"},
		{ID: 4, Name: "Stomach Pain", Category: "gastrointestinal", Severity: entities.SeverityMedium,
			Icon: "stomach", SuggestedSpecialty: "Gastroenterology", Description: "Pain in the abdominal area"},
		{ID: 5, Name: "Shortness of Breath", Category: "respiratory", Severity: entities.SeverityHigh,
			Icon: "lungs", SuggestedSpecialty: "Cardiology", Description: "Difficulty breathing or feeling breathless"},
		{ID: 6, Name: "Joint Pain", Category: "musculoskeletal", Severity: entities.SeverityLow,
			Icon: "bone", SuggestedSpecialty: "Orthopedics", Description: "Pain in joints or surrounding areas"},
		{ID: 7, Name: "Skin Rash", Category: "dermatological", Severity: entities.SeverityLow,
			Icon: "skin", SuggestedSpecialty: "Dermatology", Description: "Unusual skin changes or irritation"},
		{ID: 8, Name: "Dizziness", Category: "neurological", Severity: entities.SeverityMedium,
			Icon: "balance", SuggestedSpecialty: "Neurology", Description: "Feeling lightheaded or unsteady"},
		{ID: 9, Name: "Nausea", Category: "gastrointestinal", Severity: entities.SeverityLow,
			Icon: "stomach", SuggestedSpecialty: "Gastroenterology", Description: "Feeling of sickness with urge to vomit"},
		{ID: 10, Name: "Fatigue", Category: "general", Severity: entities.SeverityLow,
			Icon: "tired", SuggestedSpecialty: "Internal Medicine", Description: "Extreme tiredness or lack of energy"},
	}
}

// SeedNavigationSteps returns the fixed indoor walking route.
func SeedNavigationSteps() []*entities.NavigationStep {
	return []*entities.NavigationStep{
		{ID: 1, Title: "Main Entrance to Elevator",
			Description:      "Walk straight ahead to the elevator bank",
			Instruction:      "Continue straight through the main lobby, past the information desk",
			Floor:            1, EstimatedMinutes: 2,
			Landmarks: []string{"Main lobby", "Information desk", "Gift shop"}},
		{ID: 2, Title: "Elevator Area",
			Description:      "You have reached the elevator area - scan NFC to continue",
			Instruction:      "Scan the NFC tag at the elevator area to confirm your location",
			Floor:            1, EstimatedMinutes: 1,
			Landmarks: []string{"Elevator bank", "NFC scanner", "Directory board"}},
		{ID: 3, Title: "Final Destination",
			Description:      "Navigate to your department and scan at reception",
			Instruction:      "Take elevator to Level 3, turn right to Neurology Department",
			Floor:            3, EstimatedMinutes: 3,
			Landmarks: []string{"Level 3 elevators", "Neurology signage", "Reception desk"}},
		{ID: 4, Title: "Emergency Exit Route",
			Description:      "Alternative route for emergency situations",
			Instruction:      "Use emergency stairwell if elevators are unavailable",
			Floor:            1, EstimatedMinutes: 5,
			Landmarks: []string{"Emergency stairwell", "Fire exit signs", "Emergency assembly point"}},
	}
}

// SeedCheckpoints returns the scannable NFC checkpoints.
func SeedCheckpoints() []*entities.Checkpoint {
	return []*entities.Checkpoint{
		{ID: 1, Name: "Main Entrance", Type: entities.CheckpointEntrance, Floor: 1,
			Coordinates: &entities.Coordinates{X: 0, Y: 0},
			Description: "Primary hospital entrance with reception desk"},
		{ID: 2, Name: "Elevator Bank", Type: entities.CheckpointElevator, Floor: 1,
			Coordinates: &entities.Coordinates{X: 50, Y: 20},
			Description: "Central elevator area serving all floors"},
		{ID: 3, Name: "Neurology Department", Type: entities.CheckpointDepartment, Floor: 3,
			Coordinates: &entities.Coordinates{X: 75, Y: 15},
			Description: "Neurology department reception and waiting area"},
		{ID: 4, Name: "Cardiology Department", Type: entities.CheckpointDepartment, Floor: 2,
			Coordinates: &entities.Coordinates{X: 60, Y: 25},
			Description: "Cardiology department with specialized equipment"},
		{ID: 5, Name: "Emergency Department", Type: entities.CheckpointEmergency, Floor: 1,
			Coordinates: &entities.Coordinates{X: 100, Y: 5},
			Description: "24/7 emergency services and trauma care"},
		{ID: 6, Name: "Internal Medicine", Type: entities.CheckpointDepartment, Floor: 2,
			Coordinates: &entities.Coordinates{X: 40, Y: 35},
			Description: "General internal medicine consultations"},
	}
}
