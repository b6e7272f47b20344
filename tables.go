package jubjub

// Precomputed windows for MulGen(): the first 16 multiples of G,
// 2^65*G, 2^130*G and 2^195*G, in precomputed affine representation
// (entry i holds (i+1)*B for the window base B).

var mulGenWinG = [16]AffineNielsPoint{
	/* 1 */
	{
		vPlusU: Fq{0x56FEE1E3DDCA9BD3, 0xD0B39369D0AD3E25,
			0x5E7F6B176B4716BD, 0x3F8A04A1C3F59ECD},
		vMinusU: Fq{0x0A697C878ED880DF, 0xE289102A084823EF,
			0x10B0E51DD0DE2D60, 0x21D434DFFB0B1837},
		t2d: Fq{0x7248150CAB48D0B6, 0x7C8E586F93B30F3D,
			0x1EC8A19F5F644691, 0x32E93209868BB8A5},
	},
	/* 2 */
	{
		vPlusU: Fq{0x0304BC3AC30E6B76, 0xC310ECAAC53EF10B,
			0xDEB773C677CDCFF3, 0x02BC27137BEF0518},
		vMinusU: Fq{0xE7D5FC80C1062E53, 0x257C26FF38D23A4D,
			0xE84EDB0D977A6B5C, 0x01EB4E0B30FF1086},
		t2d: Fq{0x0459060BFE0D0872, 0xC1FBE33CC1F11398,
			0xBFD7360F7491F3E3, 0x268228E888C2462D},
	},
	/* 3 */
	{
		vPlusU: Fq{0x81E782B5B07816DE, 0x408D6963350131A1,
			0xFA131201B7DC6D58, 0x257F0C99AD82ECBA},
		vMinusU: Fq{0xDE864EDB821932A9, 0x6D07839FE9284806,
			0x5BF9D490C1C4FBF2, 0x0D5AD281993B3AB2},
		t2d: Fq{0xE1E7530E73E655AC, 0x5029C56E571EFD7D,
			0xF05624B0D498055A, 0x0BA1B9BDBF01F8A9},
	},
	/* 4 */
	{
		vPlusU: Fq{0x1BC1AEE983914229, 0xD063AF0510E70E75,
			0xB858E5E8F89E4382, 0x68A91A51A73E43CA},
		vMinusU: Fq{0x799639ED1E6ACE9F, 0xCAE134089CA316EF,
			0x3873A784A06CCB3E, 0x71F1CB4E6CB0D077},
		t2d: Fq{0xBF8A16EECB71446A, 0x0BBF693A3FA5E8F3,
			0x2F96466D72EC23EC, 0x5CC2ED94D0C3A494},
	},
	/* 5 */
	{
		vPlusU: Fq{0xBC1430355CC5F758, 0x4A89EAF806E8655A,
			0xF21E0DC4ABE3253E, 0x3FC52FF48015F36A},
		vMinusU: Fq{0xAE52ACD4FA458E3A, 0x4B073DB9A6C6486B,
			0x32DE5D2497B6263B, 0x39EEA2099073C9BE},
		t2d: Fq{0x15EAAEE8C8751DF9, 0x01D153E98DA626B0,
			0x662B25C56067EDF8, 0x4B15E990B73A3F56},
	},
	/* 6 */
	{
		vPlusU: Fq{0x3BE4AAA5102FE8B2, 0x4D84ADC6EC5B312F,
			0x4AC4B8F1FF2E75CF, 0x70FB2685D57E02C0},
		vMinusU: Fq{0x2DF6209EEEEEDF0A, 0x47A8A66FDACDB33E,
			0x9AA3ED4F2225E734, 0x2CB01A9986606EC7},
		t2d: Fq{0x5000D79E6AEA0E6C, 0xB5ABCEB0F560EDFF,
			0x196093A50D69A9E7, 0x674FCC9CF433C960},
	},
	/* 7 */
	{
		vPlusU: Fq{0x6CF4E8DD025F3BE9, 0xCA7730E1B3A9FB26,
			0x38A2BBEB43DB27D4, 0x180282F9674623B7},
		vMinusU: Fq{0x7CEA9049E796D023, 0x9A94E6E031D92CFE,
			0x5337E35CBF084230, 0x0FCC9FC83966553B},
		t2d: Fq{0xF85605B4F987D741, 0xF9B0DCA6A48FBC25,
			0x0F3D73883EC09E20, 0x3A569E6B0653E0FC},
	},
	/* 8 */
	{
		vPlusU: Fq{0x036D95D6A90FBC04, 0xFF64F607BEAAB333,
			0x0E1251D99C0B47E8, 0x35D8093548A8BCB0},
		vMinusU: Fq{0x7E404301AF2B19DD, 0x7FDB58B9FB3D42AC,
			0x976342E751ABDA5F, 0x24FA2FB2175F9266},
		t2d: Fq{0x0701DB393AF81770, 0x821401FDBD73EB38,
			0xF39732F49BAE0449, 0x488DC753A7FC4C68},
	},
	/* 9 */
	{
		vPlusU: Fq{0x13EDEFB653DABB0D, 0xA5D8339535253C69,
			0x4050D0A6960A7798, 0x5C23B6CE5B55B1B7},
		vMinusU: Fq{0x5F332D696BBD3FCB, 0xECA8A3271632AB6B,
			0xDC53B2457CA1A85A, 0x0C344C251ADF396F},
		t2d: Fq{0xF714F326C05D60D9, 0x753BEECC7D97142B,
			0xEA313CF6EAB8458E, 0x5FD497C80B15116C},
	},
	/* 10 */
	{
		vPlusU: Fq{0xE84FA39CB0D1375E, 0x1AD4865BB9A4C22A,
			0xFE2C3208377D1AD7, 0x0E378CC8EFE9510C},
		vMinusU: Fq{0xFA1D5C4E757C5A7D, 0xB4F371F0AF53E01F,
			0x94BC35BBDD044E18, 0x738486F78CE8A737},
		t2d: Fq{0xA652F0EA05CA5535, 0x5B0366F9F1DF18AF,
			0x577127531EAB24F0, 0x5D4B9F38138EF8F0},
	},
	/* 11 */
	{
		vPlusU: Fq{0x888A8ACCCE061D3C, 0x99AC55C834751FC7,
			0x1BE89010C93D23D2, 0x06D13F36BDCE2D13},
		vMinusU: Fq{0xC7981FD2FCA7AFF6, 0x59EB5BC207794939,
			0x915242D565450DC0, 0x2FD5991CBD48BB3D},
		t2d: Fq{0x17F4C58DA3EFA17E, 0xAE94267F5AA9D8C1,
			0x20E752077D4D7EC6, 0x10DD79C5E4997535},
	},
	/* 12 */
	{
		vPlusU: Fq{0xA5A31AC5786BE6B8, 0x8B1B33BA43DAD4AE,
			0x3F1549B3525F50DE, 0x0EBBE9DD6F5F0012},
		vMinusU: Fq{0x10084A89B7322383, 0x22EE53E379C16256,
			0xCF6D3E17A435EBA3, 0x62A6C8C3165E4DA8},
		t2d: Fq{0x04E4F105300EBFB3, 0x54D5807FE170A129,
			0xBB73AED5A91DCDE4, 0x60F824DE5D65591F},
	},
	/* 13 */
	{
		vPlusU: Fq{0xD10D845905654BC3, 0x3351D6C5DE0A2AEC,
			0x01478B66749C8F08, 0x664525C05F65218E},
		vMinusU: Fq{0xF3C608D7B8E5C808, 0x2553393B2FB7F752,
			0xFB3F10F954AEDFBC, 0x0CDF8F8BBD7AB179},
		t2d: Fq{0xC6F96B29D5A87C78, 0x41022E0CAF11A0AF,
			0xD7C19899255729AF, 0x5B37B114B51579A2},
	},
	/* 14 */
	{
		vPlusU: Fq{0xA287B7E942C8F20C, 0x804C0834C0F5C5A7,
			0x026504453CE3F507, 0x5190F5B446588F6A},
		vMinusU: Fq{0x808B9FDD880700F1, 0x708402D3284F41C1,
			0x31CD9624EAE2C01F, 0x19686C725F6736AA},
		t2d: Fq{0x8862BACF2879B464, 0xD7E2C2005467E4D3,
			0xFB4CF5AF08474FEF, 0x0FF94C12E88BAFEA},
	},
	/* 15 */
	{
		vPlusU: Fq{0x3DA8390AAF610591, 0x9932973438806964,
			0xBE9FBCD342E58468, 0x40919B1E3E88924D},
		vMinusU: Fq{0xD146F93CCBE3F8BA, 0x09DA64FB785699BE,
			0x72814F2E119F64DA, 0x35E184063AA9090C},
		t2d: Fq{0xCBD2C90D2BED5E36, 0x4C70C1F85F29EC78,
			0xD8D9A2C53C83AFCF, 0x064EF41B79E80690},
	},
	/* 16 */
	{
		vPlusU: Fq{0x9A4FC1A84051A4C5, 0x2A2C705195456259,
			0xD5175C7A9D4A4A8D, 0x5544C08F3392EB5E},
		vMinusU: Fq{0xD6A7F583E32626AC, 0x3EAC7B7378658D5B,
			0x3746F671EFBA7857, 0x094EDFB38680E69B},
		t2d: Fq{0x361BBC358048B218, 0x3C6F3D35AB266E53,
			0xC9E2702265EF38C3, 0x5B59AD5E99792EAE},
	},
}

var mulGenWinG65 = [16]AffineNielsPoint{
	/* 1 */
	{
		vPlusU: Fq{0xD15285E3C3D69CA5, 0xD1B7CCBA8C1A9415,
			0x6424898619AD1B43, 0x3C0E3103663D4ED7},
		vMinusU: Fq{0x9E96284BAB7A15DE, 0x2163D6CF14E68FC1,
			0x749690B691BD7169, 0x5F2FDDAE2376F804},
		t2d: Fq{0xB21218D27CD6CB02, 0x60EF70C5BC084059,
			0xA128B6A948618912, 0x3286A0716861F64A},
	},
	/* 2 */
	{
		vPlusU: Fq{0x1DB877239E6ED289, 0x183CCC6E90C33425,
			0x0B7DEE780B7FEE9A, 0x5BE97317525F0ADD},
		vMinusU: Fq{0x1E7B21E70084342D, 0xC4455950F9707939,
			0x96C7BC720F77A482, 0x25F464A480402DAF},
		t2d: Fq{0x9FD76F10D452FED1, 0xFE0A5DBC69FA3D72,
			0x3F3C4B63708E0E72, 0x4C42A70596DCE2E0},
	},
	/* 3 */
	{
		vPlusU: Fq{0xA38629F3B01F051C, 0x0693B8F4386261CA,
			0xCC6F0F13DC7B5FC6, 0x0684C17A9DF4462D},
		vMinusU: Fq{0xDD960A0AA654C319, 0xA11EBED2E21E17FF,
			0x2E86E39DA71A4FAD, 0x67A0AFDEFCA355CA},
		t2d: Fq{0x3ECED707C5C01A6F, 0x9B8EFF3E483B7707,
			0x2D2A3D561574C606, 0x17D910D4A41302B3},
	},
	/* 4 */
	{
		vPlusU: Fq{0xDAAF372A595D7D47, 0xC5A42427DFE9C1F3,
			0xAAD64D005449B69D, 0x6DA284ABD83E73F2},
		vMinusU: Fq{0x151D2154FEE2B92E, 0x247FE47D670E10E0,
			0x1A7329AFDE0DABA0, 0x4A16701D185EC190},
		t2d: Fq{0x9C01A28EC60DB85F, 0x666270DEFF0C38DA,
			0xC92CC973CEC7E3B1, 0x60F87204999CB479},
	},
	/* 5 */
	{
		vPlusU: Fq{0xA03026D76B468DF2, 0xEA61B102C4E863D6,
			0x92974BF41698204C, 0x571099D19BCDD199},
		vMinusU: Fq{0x0FC2AE0A5D4E313F, 0xD188A1A3D6A9C41E,
			0x3AF429115BCC2510, 0x49302AECC2C85171},
		t2d: Fq{0xF401778F9F4889E4, 0x6613E58D0F230305,
			0xD02497BA056BEB4B, 0x6541571DC8F09F4E},
	},
	/* 6 */
	{
		vPlusU: Fq{0xC819F1B1DF9694FE, 0x74860FE12053D175,
			0x0AB7197FE715AF93, 0x4CA8D2028BBFA0DF},
		vMinusU: Fq{0x3974C1B7FE366B08, 0x5629DD517C1E2F95,
			0xCD156A21F94DFBA9, 0x0B35C5D1BDA80EDB},
		t2d: Fq{0x6E6BA36EC622A17A, 0xD6AB853CD2ACED7C,
			0x00F4ECC7F438B09A, 0x02BDDCBE04341227},
	},
	/* 7 */
	{
		vPlusU: Fq{0x9694F8285289D4EB, 0xAA13211642D1E963,
			0xFBD00395B8778C2C, 0x15CF223E08534D95},
		vMinusU: Fq{0xE600F781812BD18E, 0x56CF7B9F410BDB8C,
			0x0E968968CB52CACC, 0x04174D1FD2B82DE4},
		t2d: Fq{0xD7F3D4F4AAB6743E, 0xEF3608D9E84167A8,
			0xAD90D04ECDC4A298, 0x66CE9491CF5E1236},
	},
	/* 8 */
	{
		vPlusU: Fq{0x5B52F6CEED7616F0, 0x52EAE09465F3C195,
			0x9108F9744D8C831C, 0x66FBC6D930111FA5},
		vMinusU: Fq{0xB2C8C9EF5B184595, 0x3F878606FCFD322E,
			0xE86273B8B10CA7D8, 0x0C8EDB890860B565},
		t2d: Fq{0x30031C32EAB15068, 0x624F8BC86030E63F,
			0xEC0705AB6DFC93C6, 0x49B11A491AFC0B11},
	},
	/* 9 */
	{
		vPlusU: Fq{0x832021B4410E4F8D, 0x6853E2F6854A5844,
			0xABB70C379FA05EFC, 0x35C0AE733D8994D0},
		vMinusU: Fq{0x7902F7421C63F1AA, 0x416414127A6DE1E6,
			0x4A47660FDE058CB9, 0x575DD68DB562DBEA},
		t2d: Fq{0xAFEB5C0C9C226C0B, 0xAEA1714506A1C993,
			0x7D3D42073CA88043, 0x154265B156426BAD},
	},
	/* 10 */
	{
		vPlusU: Fq{0x959D0843D2BBED2E, 0x68615FB13A96FDF0,
			0x8293760B6E2478C1, 0x6F4B2BA4BCCC54B6},
		vMinusU: Fq{0x6B995FA09BA550AA, 0xFA4E4379F9068A08,
			0x23F878423BCEEAD6, 0x4480C845BCF5623C},
		t2d: Fq{0x7F81AA11C84C6173, 0x3F880A4DAADF7ABF,
			0x99F755100467AC29, 0x260268C2855B140E},
	},
	/* 11 */
	{
		vPlusU: Fq{0xB730D13830636DB6, 0x4F33DCFCF975C2AC,
			0xA675AE5CAB09CB07, 0x00CE52960D91E832},
		vMinusU: Fq{0x7765D3830B1C8CF7, 0x6C4CFC5EA11E620B,
			0xCF1DC6D2E713C05D, 0x0F3F591307553960},
		t2d: Fq{0xBC24090D83F3A7BE, 0x628EC6502B283E63,
			0x4F698BC1448CDE0B, 0x11773721B00D17CA},
	},
	/* 12 */
	{
		vPlusU: Fq{0x5811AAC81D9214FB, 0x487218641A42ACC1,
			0x4559A59AC4736F6B, 0x4A1F9317B3A19415},
		vMinusU: Fq{0x78D0454C12492499, 0x8788285E748E8141,
			0x61985DD30ABA712F, 0x5D3CA4EDD3AC3A5B},
		t2d: Fq{0x1B5CDC2F33452A42, 0xD3A45D345CAE61F6,
			0xD724FFF5463F6CFB, 0x410F4D48CC4C634C},
	},
	/* 13 */
	{
		vPlusU: Fq{0x669683901CB83520, 0xAFCD984B10921203,
			0xA1CD06520746D0F7, 0x4178621809C5F69F},
		vMinusU: Fq{0xC9E7A262B1419ED6, 0xC536A2E09F4335F5,
			0xFC8AED8D980FA631, 0x01FA3FBB388E892F},
		t2d: Fq{0x871BD4C56F9C8FEE, 0xA8D586F06EDDE43B,
			0xB084DF2C402FADE4, 0x4D70AF18763589E4},
	},
	/* 14 */
	{
		vPlusU: Fq{0x22F1A9C3E23C0735, 0x23B2E3D300B6A427,
			0x5E302D1D0F2470B0, 0x3AB95523CE957448},
		vMinusU: Fq{0x7252FE69F4A63ED7, 0x9CA47646FC280759,
			0xDB2912AA0E0802A7, 0x6E38B9A2776DBC41},
		t2d: Fq{0x81B781A6AAC0F4E7, 0x7B697C263AD56B82,
			0x9F9EFFEB4908D7F7, 0x1437BE80C118596E},
	},
	/* 15 */
	{
		vPlusU: Fq{0xD3852BAF88CB3A06, 0xD77E4E60AB94F918,
			0x97222D17E53A3A4C, 0x1DAAC1823229DCBD},
		vMinusU: Fq{0xF19D8D68B0A3D1B7, 0x3E42700B312C6160,
			0x29561ECB758F1161, 0x5F8CE1EBAFCB227C},
		t2d: Fq{0xC7EB61F8B907E51E, 0x78A101C7AFC35095,
			0x4B495A234B94C6E4, 0x606C74D4E8B93750},
	},
	/* 16 */
	{
		vPlusU: Fq{0xB0DA396F65D3DD7D, 0x72356965D18C92C3,
			0x404DF30E3157596F, 0x174885E70095CDFE},
		vMinusU: Fq{0x9986180F9795E02A, 0x32BF7C3F2CDC48C3,
			0xFC40C0CB4451C98D, 0x541466676F26E51E},
		t2d: Fq{0x87791C74297D4099, 0x93F7942FE52BB1B8,
			0x64417BE77E8DA96F, 0x0379319D21690FA7},
	},
}

var mulGenWinG130 = [16]AffineNielsPoint{
	/* 1 */
	{
		vPlusU: Fq{0x8A826ED0B4715306, 0xC6EF7924AA39BC67,
			0x82F989D2E94F8D95, 0x6CDFCBB7A1B5CABF},
		vMinusU: Fq{0xEDFB85D1624EBA32, 0x30CCF57836C56261,
			0x17689FA8E52A2495, 0x4B6FFAC18758885D},
		t2d: Fq{0x83D87DF9F9775313, 0xF99706CCA70A9038,
			0x5A162159B80D75F4, 0x611779693DE9E535},
	},
	/* 2 */
	{
		vPlusU: Fq{0x21618D407ACFC8C9, 0x8D7D28EF1D6CBF09,
			0xDE78A3946DC48B5B, 0x277CFD4B490A60C3},
		vMinusU: Fq{0x3C1884FED8A2AF35, 0xDB6779F77D1ED869,
			0xB6B477736BF2FE89, 0x37CCA11A7719F42C},
		t2d: Fq{0x81F33C3B36E20814, 0xD1C0A552FAF1B1FD,
			0x946149E133DF931D, 0x17C76CD54EEC5EA3},
	},
	/* 3 */
	{
		vPlusU: Fq{0xE3336602CF133AC3, 0xE0E967C2A632A245,
			0xACB110B114B349B1, 0x04F878B04895FCE1},
		vMinusU: Fq{0x215827033877468C, 0x67F01D81EC00C530,
			0x548CBD8C1B230056, 0x074898BEC01B4911},
		t2d: Fq{0x187B01264A1281F7, 0x711708D5450E1CD8,
			0x49B1C270FA25B085, 0x6A36E42D37D4440D},
	},
	/* 4 */
	{
		vPlusU: Fq{0x823AEC31ACD5DC07, 0x67B3FC39D64EF220,
			0x91924BB3182CD116, 0x0F0154B608737120},
		vMinusU: Fq{0x2C47E9E8AB2393F0, 0x248D4BCE4F925E1B,
			0x287AAA01379450AB, 0x01F64C2CCDB7597C},
		t2d: Fq{0xBA968B60A76FAFD0, 0xC140F0E927248D5B,
			0x999036504FF69FFA, 0x4C2FD90C755CE107},
	},
	/* 5 */
	{
		vPlusU: Fq{0x7AF19CF7CE1E6883, 0x0FA32D0C3654A01F,
			0x1623AC39DA2F88C4, 0x09F939CA5A3AD54D},
		vMinusU: Fq{0xA039B15D26703D4B, 0x8F4155D92B8CF27B,
			0x050FDD9D3334F226, 0x2A0C64FC6438CAD1},
		t2d: Fq{0xD0BF11DCAAE369A2, 0xC6C41567BDDF8802,
			0x361B98E02C546976, 0x3DBD35A73A31AED6},
	},
	/* 6 */
	{
		vPlusU: Fq{0xEE27F1F8A51CD09D, 0x030B8D1900ED77FA,
			0xCE9D2AEA58A30BD9, 0x69AF7E54103F2CCC},
		vMinusU: Fq{0xB2BA52D3F9270EC5, 0xC7377A794A9F6353,
			0xE85AB7BC8BE420B1, 0x06AC9FAD31F868F4},
		t2d: Fq{0x06D238D9ED850B0E, 0x79C18011B1556188,
			0xA47ED255E4B2F4CF, 0x4F0D4B76FF9B1681},
	},
	/* 7 */
	{
		vPlusU: Fq{0x83539317D92A65B3, 0xD68BCD1D3A006639,
			0x901024A2AABB12B7, 0x715A7E45A96C9F9A},
		vMinusU: Fq{0x6706D9DD564537E1, 0xE7BD12B7F4477074,
			0x66717284D80A0B8E, 0x5C9854311DA3666A},
		t2d: Fq{0x8EA0232C8E13CED6, 0xC35937577B6DF402,
			0xC7FB0DA429AEA940, 0x1ECC26D8837371CC},
	},
	/* 8 */
	{
		vPlusU: Fq{0xE9C6A440B1409DF7, 0xDF298C75AB620BA1,
			0x45B708BC2700121F, 0x48A92788BB74201B},
		vMinusU: Fq{0xEB6F70FC6A3AB134, 0x3594D5EB006F6963,
			0x369F567075EA9E0D, 0x0528DCFB6B8360C2},
		t2d: Fq{0x28271D88DD3C335D, 0x96BF7D7FE9182304,
			0x215A0DF956F75510, 0x3E443A9EC1CCB018},
	},
	/* 9 */
	{
		vPlusU: Fq{0x0E874E16F44057C7, 0x4AF41BBC07E2C232,
			0x3F2B877D07681921, 0x6C1E9561F540947D},
		vMinusU: Fq{0xFF33BF7788934084, 0x2DD538329D4BC8B8,
			0x6F28C0B85F8A4A36, 0x473F50078DD4C9D0},
		t2d: Fq{0x31CAD30CB7801B60, 0x5056D8B27ACAAE0B,
			0x1391933338B82083, 0x4E951E30636B9825},
	},
	/* 10 */
	{
		vPlusU: Fq{0x4E0B1D2136B76BB5, 0x85E8D6B6EEB7843E,
			0x7E533A8C94204EA2, 0x68FEA590639E917B},
		vMinusU: Fq{0x5B8B66AF69E4CB45, 0x160A708788CE4D66,
			0xD865912A74012ED1, 0x00CC368E3CBE84DF},
		t2d: Fq{0xA9CE59359A7E3E9E, 0x13FBDC1AA28D3576,
			0x567C6E5EFB70452B, 0x049313CF78360A2D},
	},
	/* 11 */
	{
		vPlusU: Fq{0x14A6B9EAA9796BA7, 0x1D6188349CD8BEDC,
			0x0EFBD2079A4D852B, 0x65AD4BA655CCF030},
		vMinusU: Fq{0xC6CF94A607D10075, 0x8B73AA91CF8A504C,
			0x848030AB32604F46, 0x31BC636D1E0E3975},
		t2d: Fq{0x79D5E2549190D022, 0x8AF8E4052B7DD42C,
			0x9F427A4C22FF847F, 0x0C04A9460E5C3FA5},
	},
	/* 12 */
	{
		vPlusU: Fq{0x69DF3D7775E67D29, 0xC6C56F0886359400,
			0x2AF1F1244C598B6D, 0x004C3C7EC5079B1F},
		vMinusU: Fq{0xF253BCDCCBECE889, 0xBC60CB694F4556F7,
			0xF74CF703A18A6689, 0x6E37C2E87B070FD5},
		t2d: Fq{0x8E0B10DEF3A45C45, 0x3811DE92D2426767,
			0xC39869EBCD419075, 0x06C79893B3D7B01A},
	},
	/* 13 */
	{
		vPlusU: Fq{0xDCC87461D15BFB53, 0x07D779C5F81F98E4,
			0xD8480A92B8136822, 0x59727D11B9B8BB10},
		vMinusU: Fq{0xD21CA5A9951130FD, 0xE725BF5060BD69CC,
			0xA4932090C5828D40, 0x70CEB2A17B7ECDBC},
		t2d: Fq{0x77E6D4C16AE3DECC, 0xCA448BD425B45831,
			0xB2FDD84A691593DA, 0x103E08149BC4AEF0},
	},
	/* 14 */
	{
		vPlusU: Fq{0x483B5407590744C5, 0xBF07AB7F2B01F26D,
			0x1A06872956437F05, 0x723EB2D8642B052F},
		vMinusU: Fq{0x0F88C5A8853AD224, 0x0E66E707ED59E1AE,
			0x8A425A1A5E380273, 0x3FB252666AE8F117},
		t2d: Fq{0xDD658ED56E777098, 0x24706B79A328BFB3,
			0x42211766372A3413, 0x3B5D801BB8B379AA},
	},
	/* 15 */
	{
		vPlusU: Fq{0xBB5111740E586BD1, 0x1F95DD784D48DF8A,
			0x87BBBE255F0EBC90, 0x22F6A12672764F60},
		vMinusU: Fq{0xB094F642BE283030, 0x79CA838D61114F68,
			0x6429BBB2AFA8B88F, 0x357DAAD0AF066F5A},
		t2d: Fq{0x726725164B17F4B2, 0xB631F97DD91343D9,
			0x50162A8C8EF6CCE6, 0x68C0227D44F76F27},
	},
	/* 16 */
	{
		vPlusU: Fq{0xFE1FD67E3DABBED0, 0x293AB7EAB12C9A77,
			0xE2822B21E0CD4646, 0x12D14C50C97AF726},
		vMinusU: Fq{0x6557AE94EF5F99FB, 0x4E324285D6D88C1D,
			0x3BFF11E5113F485E, 0x6103A73449095CF4},
		t2d: Fq{0x252D800E6F3F0FBB, 0xE5FE9D88F56BBDFA,
			0xC78894DB1C955DF3, 0x55B758B20407DD0F},
	},
}

var mulGenWinG195 = [16]AffineNielsPoint{
	/* 1 */
	{
		vPlusU: Fq{0xAF8E6A39CEEE35E5, 0xE5F1D18F7646C6DB,
			0xDD50DDE1C10009F3, 0x2D787CF64AA2D1DE},
		vMinusU: Fq{0xDF8DD4B0F2F99C1D, 0xE3E0EDBCD7CB7226,
			0x0E64587CC3778C28, 0x25100406982EA872},
		t2d: Fq{0xCEA7DCA471E838D2, 0x2D651413316C01CE,
			0x4BB85894A3284238, 0x1C932B31CA3FBEC4},
	},
	/* 2 */
	{
		vPlusU: Fq{0x22E7D5B7D1481A1C, 0x952305B7425E4348,
			0xC7EEC05435E91CD3, 0x25993144A20872B6},
		vMinusU: Fq{0x818F7F499D401208, 0xB6B5EA876AE3E6CE,
			0xC295836CC15B0AEF, 0x3DB9FC82244FFC29},
		t2d: Fq{0x51F1452B9ED2F1ED, 0x823606B0C36E5939,
			0xFBC61F56E4463016, 0x6F9DF7BCC0531396},
	},
	/* 3 */
	{
		vPlusU: Fq{0xE01C83DA5FEF18BB, 0x40A3B66158F08F71,
			0xC6981C9614CC3A86, 0x38190ED90C5BAC5E},
		vMinusU: Fq{0xAE7A7394BFD6A3A4, 0x230DD0AF0849B049,
			0xC698F71FF7972010, 0x556F5BACAE34ED02},
		t2d: Fq{0xA5DF35932EE1E784, 0x1C8402427A3E463C,
			0x8CBFE17BCAE04188, 0x1D56B10A58A8D488},
	},
	/* 4 */
	{
		vPlusU: Fq{0x3CFB586A4830FBF9, 0x108028F659082BE1,
			0xC1B5612917EBD24F, 0x01A64DE8A6240B61},
		vMinusU: Fq{0xBEBEAF3943C3A59A, 0x087E084D33860890,
			0x619F7EA52F743345, 0x0E9F2C11E39F900A},
		t2d: Fq{0xC95DF80A0A8FE3BA, 0x243081D881942245,
			0x934C3D5AAF2B944D, 0x32D1F41D1078D6E2},
	},
	/* 5 */
	{
		vPlusU: Fq{0xB71431660EDD8AF5, 0x58AC4216CD298345,
			0x3FE44CEF4FF05AE2, 0x4B371F22E5962855},
		vMinusU: Fq{0x192E668E9E4EFEF0, 0xB08A751605AEFBE2,
			0xE249920268A7EB42, 0x2CB8D7D919B60260},
		t2d: Fq{0x8230169137AE6525, 0xBCD9FDBE6DCF60C0,
			0x74127DFB2E092CC5, 0x510869E0EF3192D2},
	},
	/* 6 */
	{
		vPlusU: Fq{0x5D136264CB0B34C0, 0x29CECC513C3A9023,
			0x1794995E032F4804, 0x011C625994895B16},
		vMinusU: Fq{0xD18F0FD7E85E2257, 0xD4076C57AFD48C7C,
			0x73F18ABC545A2803, 0x03A89C055A719C29},
		t2d: Fq{0xC88DCCCCA5ED85AC, 0x6FB34CC5C6163463,
			0x0BC9D2292D1203C6, 0x6D2EE893759FBC11},
	},
	/* 7 */
	{
		vPlusU: Fq{0x1563DD5AF1036DCB, 0x7E20CD694022C7AD,
			0x5DB2002763234494, 0x2925B82BAC16D47C},
		vMinusU: Fq{0xDA6FA5F3A2CE1D6D, 0xF62390153BD944C4,
			0xC10DC3C0D3C2E8FF, 0x563ABCFEF7598E02},
		t2d: Fq{0x8339F3749B46BADC, 0x11485A5D9FA2B61C,
			0xD90A67C4B27A6977, 0x390292DF077CB54B},
	},
	/* 8 */
	{
		vPlusU: Fq{0x8B5DD75B0A58B15D, 0x9CCC5CE200DBA77D,
			0x89619862C596FDE6, 0x56DBCF231FE35E2F},
		vMinusU: Fq{0x85BFA49880C09D59, 0x7CD2ED6F8700239A,
			0x7521B30C5E32D76A, 0x46356CDDCF5F3673},
		t2d: Fq{0x1D45A34135F8784B, 0x4451D27DB4FF67BC,
			0xFA77195734958D43, 0x64D21D51611DC64C},
	},
	/* 9 */
	{
		vPlusU: Fq{0x7B9562B3C7DCBB2A, 0x9D9AF6FB54186366,
			0x6535D2EBDB9955C6, 0x0206078007F09BA9},
		vMinusU: Fq{0x89DBB5638F5A9C90, 0xB4A337CECBDFE369,
			0x34542D929AAC08EF, 0x130696096F7828EB},
		t2d: Fq{0xDB7F606D26B8B0FA, 0x359FEDCFC9878B3D,
			0x88AFC6C38D40707A, 0x52C9BB34DF2B6E95},
	},
	/* 10 */
	{
		vPlusU: Fq{0x64F12362C5FADFCF, 0x67C1ECD3425B1048,
			0x117E124CC76C6BF0, 0x5868A559738CCAE3},
		vMinusU: Fq{0xCED98C1E931596CB, 0xDCF7178B3A4DD7AF,
			0x7489357935B2EBA3, 0x72131EB92E2C65F6},
		t2d: Fq{0xDFD6713E31645014, 0x1E5D9151DCAA92EF,
			0x7720DA1D9AE4918F, 0x2B16A0C788E988CE},
	},
	/* 11 */
	{
		vPlusU: Fq{0x0B9527B4E975D864, 0x2D309F7835E7C0C4,
			0x047F154E168C7621, 0x2035F7AF16A1B1D0},
		vMinusU: Fq{0xAC398DBD1002921F, 0x83C74FD814E385DE,
			0xB451A4A2FE8B5BDB, 0x39972FCFC4CE606C},
		t2d: Fq{0x0EA538A6AA54F5C6, 0x2A1382E63464F53B,
			0x0C090CCF829878DC, 0x0E6B03CA4F75C44F},
	},
	/* 12 */
	{
		vPlusU: Fq{0xCC84485548944DAC, 0x6B798ABF1FB948FE,
			0xA2F2C44A32165242, 0x6387C702FA2D3545},
		vMinusU: Fq{0x5AAB2109140839F9, 0x9E9E7BF34CC1A08B,
			0x525FA6565187D0CC, 0x334E2F1334D9A79E},
		t2d: Fq{0xEDBFF92DD4E99997, 0xCA7DFB6B91F79E98,
			0x4376E3D5911BCD86, 0x4AFFE3DB1096A501},
	},
	/* 13 */
	{
		vPlusU: Fq{0xB5A0C0D166135016, 0xF0ECDD4AA497323B,
			0xA06615FBA9918CA3, 0x17D2987AF6795C17},
		vMinusU: Fq{0x36273AFCEC4A8491, 0xF376EFF995D03B34,
			0xEF4DCFAE87D42F6C, 0x5D5502BFE3881C72},
		t2d: Fq{0xFAF13465351AFD04, 0x56E8542CE99FBD91,
			0x754A345E750E75EB, 0x1CDCF5759751AE0E},
	},
	/* 14 */
	{
		vPlusU: Fq{0x2E943D68B5551994, 0x94A8CEAC6E998AA0,
			0xDE97DB887C48AB57, 0x0C4A9E4C9972B8C4},
		vMinusU: Fq{0x30852BF35C207BCA, 0x9EC318F161BF9DDA,
			0xBC4E4A12D8E93084, 0x2879E1ABC9C23B52},
		t2d: Fq{0x4853DA639E16A3A1, 0x91EF836A5EDC1958,
			0xFC26EBF266996C6C, 0x6D0FBAC0B2F9C8B4},
	},
	/* 15 */
	{
		vPlusU: Fq{0x7B43A4E0623C1D86, 0xD83EE160BE931E55,
			0x0D15E2AE1CC95CB3, 0x698E33FBBEE23ED4},
		vMinusU: Fq{0x75C08CD1460FC41E, 0xC0B0ED4BFBD44688,
			0xAC8EDB0997022F3A, 0x3F8AD3F2DB1D906E},
		t2d: Fq{0xE7B0AA55906390AF, 0xC9BC083F02A0693E,
			0xFB39B7FDC25280AF, 0x53FD122D694DECE4},
	},
	/* 16 */
	{
		vPlusU: Fq{0x01C3A2D49FCBCEF9, 0xC40E0BEC9744D60B,
			0x7FFFA9AC5DAB73A6, 0x2ADF71999B582C0D},
		vMinusU: Fq{0xEE1756B5FBF826FB, 0xBEF53484F7A04C9E,
			0x8E16B35AF1CA1C30, 0x33CECC3E39CEEBF7},
		t2d: Fq{0xF524B6E583893607, 0x359308163D45EAF3,
			0x687A7A50CE759709, 0x5CEB0A3F3350D6AB},
	},
}

