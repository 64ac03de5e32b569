package service

import "github.com/shared-city/backend/internal/domain"

func demoProjects() []domain.Project {
	return []domain.Project{
		demoProject("智慧城市建设项目", "城市基础设施智能化改造项目", domain.StatusInProgress,
			"2023-01-15", "2023-12-31", "2023-01-01", 104.0668, 30.5728, domain.PublicFacilities),
		demoProject("公共交通优化工程", "城市公共交通系统升级与优化", domain.StatusInProgress,
			"2023-03-01", "2023-10-31", "2023-02-15", 104.1, 30.6, domain.RoadTraffic),
		demoProject("城市绿化提升计划", "城市公园和绿化带建设项目", domain.StatusCompleted,
			"2023-02-01", "2023-08-31", "2023-01-15", 104.05, 30.55, domain.LandscapeGreening),
		demoProject("城市供水管网改造", "老旧供水管网更新换代工程", domain.StatusInProgress,
			"2023-04-01", "2024-03-31", "2023-03-15", 104.08, 30.58, domain.WaterSupplyDrainage),
		demoProject("垃圾分类处理中心", "新建垃圾分类收集和处理设施", domain.StatusNotStarted,
			"2023-06-01", "2024-05-31", "2023-05-01", 104.12, 30.52, domain.EnvironmentalSanitation),
		demoProject("城市燃气管网扩建", "新区燃气管网建设和老区管网改造", domain.StatusInProgress,
			"2023-05-15", "2024-02-28", "2023-04-20", 104.03, 30.61, domain.MunicipalUtilities),
		demoProject("河道综合治理工程", "城市内河道疏浚和生态修复项目", domain.StatusInProgress,
			"2023-03-20", "2023-11-30", "2023-02-28", 104.07, 30.54, domain.WaterConservancy),
	}
}

func demoProject(name, description, status, start, end, created string, lng, lat float64, category domain.Category) domain.Project {
	startDate := domain.MustParseDate(start)
	endDate := domain.MustParseDate(end)
	createdAt := domain.MustParseDate(created)

	return domain.Project{
		Name:        name,
		Description: description,
		Status:      status,
		StartDate:   &startDate,
		EndDate:     &endDate,
		CreatedAt:   &createdAt,
		Category:    &category,
		CenterLng:   &lng,
		CenterLat:   &lat,
	}
}
