package doctor

import "gorm.io/gorm"

// Seed 首次启动导入名录；表里已有数据就跳过
func Seed(db *gorm.DB) error {
	var n int64
	if err := db.Model(&Doctor{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return db.Create(seedDoctors).Error
}

var seedDoctors = []Doctor{
	{
		ID: "dr-1", Name: "Sarah Johnson", Specialty: "Cardiology",
		Rating: 4.9, Reviews: 124, Location: "New York Medical Center",
		Image:     "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?auto=format&fit=crop&w=300&q=80",
		Available: true, Featured: true,
	},
	{
		ID: "dr-2", Name: "James Chen", Specialty: "Dermatology",
		Rating: 4.8, Reviews: 98, Location: "Downtown Health Clinic",
		Image:     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=300&q=80",
		Available: true,
	},
	{
		ID: "dr-3", Name: "Emma Wilson", Specialty: "Pediatrics",
		Rating: 4.9, Reviews: 156, Location: "Children's Wellness Center",
		Image:     "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=300&q=80",
		Available: true, Featured: true,
	},
	{
		ID: "dr-4", Name: "Michael Turner", Specialty: "Neurology",
		Rating: 4.7, Reviews: 87, Location: "Neuro Institute",
		Image:     "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&w=300&q=80",
		Available: false,
	},
	{
		ID: "dr-5", Name: "Olivia Martinez", Specialty: "Gynecology",
		Rating: 4.8, Reviews: 112, Location: "Women's Health Center",
		Image:     "https://images.unsplash.com/photo-1580489944761-15a19d654956?auto=format&fit=crop&w=300&q=80",
		Available: true,
	},
	{
		ID: "dr-6", Name: "David Kim", Specialty: "Orthopedics",
		Rating: 4.6, Reviews: 74, Location: "Sports Medicine Clinic",
		Image:     "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?auto=format&fit=crop&w=300&q=80",
		Available: true,
	},
}
